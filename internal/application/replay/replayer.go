package replay

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
)

// Version is written into every recording
const Version = "1.0"

// ReplayInput represents input state during replay
type ReplayInput struct {
	MouseX     int
	MouseY     int
	MouseClick bool
	Escape     bool
	Width      int
	Height     int
}

// Replayer handles input playback from recorded data
type Replayer struct {
	data  ReplayData
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{
		data:  data,
		frame: 0,
	}
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data ReplayData
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}

	return &data, nil
}

// GetInput returns the input for the current frame and advances
func (r *Replayer) GetInput() (ReplayInput, bool) {
	if r.frame >= len(r.data.Frames) {
		return ReplayInput{}, false
	}

	fi := r.data.Frames[r.frame]
	r.frame++

	return ReplayInput{
		MouseX:     fi.MX,
		MouseY:     fi.MY,
		MouseClick: fi.MC,
		Escape:     fi.Esc,
		Width:      fi.W,
		Height:     fi.H,
	}, true
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Session returns the id of the recorded session
func (r *Replayer) Session() string {
	return r.data.Session
}

// Done reports whether every frame has been played
func (r *Replayer) Done() bool {
	return r.frame >= len(r.data.Frames)
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
}

// NewReplayData starts an empty recording with a fresh session id
func NewReplayData(config string) ReplayData {
	return ReplayData{
		Version:   Version,
		Session:   uuid.NewString(),
		Config:    config,
		StartTime: time.Now().Format(time.RFC3339),
		Frames:    make([]FrameInput, 0, 3600), // Pre-allocate for ~1 minute at 60fps
	}
}

// CreateTestReplayData creates replay data for testing (idle pointer)
func CreateTestReplayData(frames int, mouseX, mouseY, width, height int) ReplayData {
	data := NewReplayData("test")
	data.Frames = make([]FrameInput, frames)

	for i := 0; i < frames; i++ {
		data.Frames[i] = FrameInput{
			F:  i,
			MX: mouseX,
			MY: mouseY,
			W:  width,
			H:  height,
		}
	}

	return data
}
