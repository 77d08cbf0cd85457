package starmap

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/starmap/internal/application/replay"
	"github.com/younwookim/starmap/internal/application/system"
	"github.com/younwookim/starmap/internal/domain/entity"
)

func TestRecorder_RecordFrame(t *testing.T) {
	r := NewRecorder("worlds.json")
	vp := entity.Viewport{Width: 800, Height: 600}

	r.RecordFrame(system.InputState{MouseX: 10, MouseY: 20, MouseClick: true}, vp)
	r.RecordFrame(system.InputState{Escape: true}, vp)

	require.Equal(t, 2, r.FrameCount())
	data := r.GetData()
	assert.Equal(t, replay.FrameInput{F: 0, MX: 10, MY: 20, MC: true, W: 800, H: 600}, data.Frames[0])
	assert.Equal(t, replay.FrameInput{F: 1, Esc: true, W: 800, H: 600}, data.Frames[1])
	assert.Equal(t, r.Session(), data.Session)
}

func TestRecorder_Stop(t *testing.T) {
	r := NewRecorder("worlds.json")
	assert.True(t, r.IsRecording())

	r.Stop()
	r.RecordFrame(system.InputState{}, entity.Viewport{Width: 1, Height: 1})

	assert.False(t, r.IsRecording())
	assert.Equal(t, 0, r.FrameCount())
}

func TestRecorder_SaveEmpty(t *testing.T) {
	r := NewRecorder("worlds.json")
	err := r.Save(filepath.Join(t.TempDir(), "empty.json"))
	assert.Error(t, err)
}

func TestRecorder_SaveAndLoad(t *testing.T) {
	r := NewRecorder("worlds.json")
	for i := 0; i < 5; i++ {
		r.RecordFrame(system.InputState{MouseX: i}, entity.Viewport{Width: 1280, Height: 800})
	}

	path := filepath.Join(t.TempDir(), "replay.json")
	require.NoError(t, r.Save(path))

	data, err := replay.LoadReplay(path)
	require.NoError(t, err)
	assert.Len(t, data.Frames, 5)
	assert.Equal(t, 4, data.Frames[4].MX)
	assert.Equal(t, r.Session(), data.Session)
}

func TestGenerateFilename(t *testing.T) {
	name := GenerateFilename()
	assert.True(t, strings.HasPrefix(name, "replay_"))
	assert.True(t, strings.HasSuffix(name, ".json"))
}
