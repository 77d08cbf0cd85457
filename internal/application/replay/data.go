package replay

// FrameInput records input state and window size for a single tick
type FrameInput struct {
	F   int  `json:"f"`             // Frame number
	MX  int  `json:"mx"`            // MouseX
	MY  int  `json:"my"`            // MouseY
	MC  bool `json:"mc,omitempty"`  // MouseClick
	Esc bool `json:"esc,omitempty"` // Escape
	W   int  `json:"w"`             // Viewport width
	H   int  `json:"h"`             // Viewport height
}

// ReplayData contains all data needed to replay a navigation session
type ReplayData struct {
	Version   string       `json:"version"`
	Session   string       `json:"session"`
	Config    string       `json:"config"` // Config file the session ran with
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}
