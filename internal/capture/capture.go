// Package capture implements the video acquisition pipeline: a camera
// stream that can be recorded into a clip, and a file picker for
// pre-recorded videos. Both paths converge on a single pending clip slot
// consumed by the submission flow.
//
// There is no real camera here. The Device interface abstracts stream
// acquisition so the default simulated device can be replaced in tests
// with failing or scripted fakes.
package capture

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/talenttrack/talenttrack/internal/common"
	"github.com/talenttrack/talenttrack/internal/filex"
)

// Clip is an opaque recorded or picked video payload. The data is never
// transmitted anywhere; its presence gates submission.
type Clip struct {
	Name string
	MIME string
	Data []byte
}

// Empty reports whether the clip carries no payload.
func (c Clip) Empty() bool {
	return len(c.Data) == 0
}

// Stream is an acquired camera/microphone stream. Tracks must be released
// exactly once; Release is idempotent.
type Stream struct {
	released bool
}

// Capture returns one simulated chunk of encoded stream data.
func (s *Stream) Capture() []byte {
	if s.released {
		return nil
	}
	return []byte("webm\x00chunk")
}

// Release stops all underlying tracks.
func (s *Stream) Release() {
	s.released = true
}

// Device acquires a camera/microphone stream. Acquisition is the only
// asynchronous suspension point in the application; it either yields a
// live stream or a capability error (denied/unavailable).
type Device interface {
	AcquireStream(ctx context.Context) (*Stream, error)
}

// SimulatedDevice is the default Device. With a non-nil Err it models a
// denied or missing camera.
type SimulatedDevice struct {
	Err error
}

func (d *SimulatedDevice) AcquireStream(ctx context.Context) (*Stream, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if d.Err != nil {
		return nil, d.Err
	}
	return &Stream{}, nil
}

// videoExtensions maps accepted file extensions to their MIME types.
var videoExtensions = map[string]string{
	".webm": "video/webm",
	".mp4":  "video/mp4",
	".mov":  "video/quicktime",
	".mkv":  "video/x-matroska",
	".avi":  "video/x-msvideo",
}

// Pipeline owns the capture state: at most one stream, a two-state
// recording toggle, and the single pending clip slot.
type Pipeline struct {
	device Device

	stream    *Stream
	recording bool
	chunks    [][]byte
	pending   *Clip
}

// NewPipeline returns a Pipeline using the given device.
func NewPipeline(device Device) *Pipeline {
	return &Pipeline{device: device}
}

// AcquireStream asks the device for a stream. On failure the pipeline has
// no stream and recording controls must stay disabled; callers check
// HasStream before starting a recording.
func (p *Pipeline) AcquireStream(ctx context.Context) error {
	stream, err := p.device.AcquireStream(ctx)
	if err != nil {
		p.stream = nil
		return err
	}
	p.stream = stream
	return nil
}

// HasStream reports whether a live stream is available.
func (p *Pipeline) HasStream() bool {
	return p.stream != nil
}

// Recording reports whether a recording is in progress.
func (p *Pipeline) Recording() bool {
	return p.recording
}

// StartRecording begins recording the acquired stream. It fails with
// common.ErrNoStream when no stream is available.
func (p *Pipeline) StartRecording() error {
	if p.stream == nil {
		return common.ErrNoStream
	}
	if p.recording {
		return nil
	}
	p.chunks = nil
	p.recording = true
	p.chunks = append(p.chunks, p.stream.Capture())
	return nil
}

// StopRecording ends the recording, releases the stream tracks
// unconditionally, and stores the assembled clip in the pending slot.
func (p *Pipeline) StopRecording() (Clip, error) {
	if !p.recording || p.stream == nil {
		return Clip{}, common.ErrNotRecording
	}
	p.chunks = append(p.chunks, p.stream.Capture())
	p.recording = false

	p.stream.Release()
	p.stream = nil

	var data []byte
	for _, chunk := range p.chunks {
		data = append(data, chunk...)
	}
	p.chunks = nil

	clip := Clip{Name: "recording.webm", MIME: "video/webm", Data: data}
	p.pending = &clip
	return clip, nil
}

// PickFile loads a user-picked video file into the pending slot. A path
// that is not a regular file or does not carry a video extension clears
// the slot and fails with common.ErrNotAVideo.
func (p *Pipeline) PickFile(path string) (Clip, error) {
	mime, ok := videoExtensions[strings.ToLower(filepath.Ext(path))]
	if !ok || !filex.IsRegularFile(path) {
		p.pending = nil
		return Clip{}, common.ErrNotAVideo
	}

	data, err := os.ReadFile(path)
	if err != nil {
		p.pending = nil
		return Clip{}, err
	}

	clip := Clip{Name: filepath.Base(path), MIME: mime, Data: data}
	p.pending = &clip
	return clip, nil
}

// Pending returns the clip waiting for submission, or nil.
func (p *Pipeline) Pending() *Clip {
	return p.pending
}

// Clear drops the pending clip, e.g. after a successful submission.
func (p *Pipeline) Clear() {
	p.pending = nil
}
