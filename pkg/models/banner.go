// Package models holds the plain data structures passed between the
// services, dispatcher, and translator.
package models

// BannerView is the read-only projection of a launched message with all
// device-relative fields already resolved: audio group memberships for
// the target device, the concrete webpage/stream URL, and the sender's
// gender. The translator consumes it without touching the database.
type BannerView struct {
	Recno         int
	TemplateRecno int
	RecDtsec      string
	Duration      int
	Msgtype       string
	Text          string
	Details       string

	// DeviceAudioGroups lists every audio group containing the target
	// device; BannerAudioGroups lists every group the message targets.
	DeviceAudioGroups []string
	BannerAudioGroups []string

	PlaytimeDuration             int
	FlasherDuration              int
	LightSignal                  string
	LightDuration                int
	AudioTtsGain                 int
	FlashNewMessage              string
	VisibleTime                  string
	VisibleFrequency             string
	VisibleDuration              string
	RecordVoiceAtLaunchSelection int
	RecordVoiceAtLaunch          string
	AudioRecordedGain            int
	PaDeliveryMode               string
	AudioRepeat                  string
	Speed                        int
	Priority                     int
	ExpirePriority               int
	PriorityDuration             int
	PagePriorityAtLaunch         int

	MultimediaType      string
	MultimediaAudioGain int

	// WebpageURL is the resolved asset reference: a URL for webpage and
	// webmedia messages, a file name for video, the camera's RTSP URL
	// for camera messages, "NULL" when a lookup fails, and the literal
	// "FALSE" when no URL is involved.
	WebpageURL string

	LaunchPin string
	Gender    string

	ShowCamera     string
	CameraDeviceID string
}

// IsCameraMessage reports whether the message should be delivered as a
// camera message: show_camera is set and a camera device is named.
func (v *BannerView) IsCameraMessage() bool {
	return v.ShowCamera == "yes" && v.CameraDeviceID != ""
}
