package starmap

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/younwookim/starmap/internal/application/replay"
	"github.com/younwookim/starmap/internal/application/system"
	"github.com/younwookim/starmap/internal/domain/entity"
)

// Recorder handles input recording for replay
type Recorder struct {
	data      replay.ReplayData
	recording bool
	frame     int
}

// NewRecorder creates a new recorder for a session run with the named config
func NewRecorder(config string) *Recorder {
	return &Recorder{
		data:      replay.NewReplayData(config),
		recording: true,
	}
}

// RecordFrame records a single frame's input and the viewport it ran at
func (r *Recorder) RecordFrame(input system.InputState, vp entity.Viewport) {
	if !r.recording {
		return
	}

	r.data.Frames = append(r.data.Frames, replay.FrameInput{
		F:   r.frame,
		MX:  input.MouseX,
		MY:  input.MouseY,
		MC:  input.MouseClick,
		Esc: input.Escape,
		W:   vp.Width,
		H:   vp.Height,
	})
	r.frame++
}

// Save writes the replay data to a file
func (r *Recorder) Save(filename string) error {
	if len(r.data.Frames) == 0 {
		return fmt.Errorf("no frames to save")
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() { _ = file.Close() }()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(r.data); err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}

	return nil
}

// Stop stops recording
func (r *Recorder) Stop() {
	r.recording = false
}

// IsRecording returns whether recording is active
func (r *Recorder) IsRecording() bool {
	return r.recording
}

// FrameCount returns the number of recorded frames
func (r *Recorder) FrameCount() int {
	return len(r.data.Frames)
}

// Session returns the recording's session id
func (r *Recorder) Session() string {
	return r.data.Session
}

// GetData returns the replay data (for testing)
func (r *Recorder) GetData() replay.ReplayData {
	return r.data
}

// GenerateFilename creates a filename based on current time
func GenerateFilename() string {
	return fmt.Sprintf("replay_%s.json", time.Now().Format("20060102_150405"))
}
