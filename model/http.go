package model

type ErrorResponse struct {
	Error string `json:"detail"`
}

type ChordResponse struct {
	RequestId string `json:"request_id"`
	Chord     Chord  `json:"chord"`
}

type ScaleResponse struct {
	RequestId string `json:"request_id"`
	Scale     Scale  `json:"scale"`
}

type PitchResponse struct {
	RequestId string `json:"request_id"`
	Pitch     Pitch  `json:"pitch"`
}
