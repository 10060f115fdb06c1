package translate

import (
	"strconv"

	"github.com/messagenet/bannerd/pkg/models"
)

// Device carries the device identity the wire bodies embed.
type Device struct {
	Recno    int
	DeviceID string
	Password string
}

// Banner purposes understood by the appliance.
const (
	PurposeNewVideo             = "newvideo"
	PurposeNewWebpage           = "newwebpage"
	PurposeNewLocationsDisplay  = "newlocationsdisplay"
	PurposeNewGeoLocationsMap   = "newgeolocationsmap"
	PurposeNewCameraMessage     = "newcameramessage"
	PurposeNewScrollingMessage  = "newscrollingmessage"
	PurposeStopScrollingMessage = "stopscrollingmessage"
	PurposeClearSign            = "clearsign"
	PurposeUpdateSeq            = "updateseq"
)

// PurposeFor selects the new-message banner purpose from the message's
// multimedia type, with the camera override taking precedence over plain
// scrolling text.
func PurposeFor(v *models.BannerView) string {
	switch v.MultimediaType {
	case "video":
		return PurposeNewVideo
	case "webpage", "webmedia":
		return PurposeNewWebpage
	case "locationsdisplay":
		return PurposeNewLocationsDisplay
	case "geolocationsmap":
		return PurposeNewGeoLocationsMap
	default:
		if v.IsCameraMessage() {
			return PurposeNewCameraMessage
		}
		return PurposeNewScrollingMessage
	}
}

// Message renders the full per-message object: the journal line format
// and the bannermessages payload of a new-message body. msgtext must
// already be sign-translated (see Text). Key order is fixed.
func Message(seqNum int, msgtext string, v *models.BannerView) *Object {
	o := NewObject()
	o.Int("signseqnum", seqNum)
	o.String("dbb_rec_dtsec", v.RecDtsec)
	o.String("recno_zx", strconv.Itoa(v.Recno))
	o.String("recno_template", strconv.Itoa(v.TemplateRecno))
	o.Int("dbb_duration", v.Duration)
	o.String("msgtype", v.Msgtype)
	o.String("msgtext", msgtext)
	o.String("msgdetails", v.Details)
	o.StringArray("dsi_audio_group_name", v.DeviceAudioGroups)
	o.StringArray("dbb_audio_groups", v.BannerAudioGroups)
	o.Int("dbb_playtime_duration", v.PlaytimeDuration)
	o.Int("dbb_flasher_duration", v.FlasherDuration)
	o.String("dbb_light_signal", v.LightSignal)
	o.Int("dbb_light_duration", v.LightDuration)
	o.Int("dbb_audio_tts_gain", v.AudioTtsGain)
	o.String("dbb_flash_new_message", v.FlashNewMessage)
	o.String("dbb_visible_time", v.VisibleTime)
	o.String("dbb_visible_frequency", v.VisibleFrequency)
	o.String("dbb_visible_duration", v.VisibleDuration)
	o.Int("dbb_record_voice_at_launch_selection", v.RecordVoiceAtLaunchSelection)
	o.String("dbb_record_voice_at_launch", v.RecordVoiceAtLaunch)
	o.Int("dbb_audio_recorded_gain", v.AudioRecordedGain)
	o.String("dbb_pa_delivery_mode", v.PaDeliveryMode)
	o.String("dbb_audio_repeat", v.AudioRepeat)
	o.Int("dbb_speed", v.Speed)
	o.Int("dbb_priority", v.Priority)
	o.Int("dbb_expire_priority", v.ExpirePriority)
	o.Int("dbb_priority_duration", v.PriorityDuration)
	o.Int("dbb_page_priority_at_launch", v.PagePriorityAtLaunch)
	o.String("multimediatype", v.MultimediaType)
	o.Int("dbb_multimedia_audio_gain", v.MultimediaAudioGain)
	o.String("webpageurl", v.WebpageURL)
	o.String("dbb_launch_pin", v.LaunchPin)
	o.String("dss_gender", v.Gender)
	return o
}

// CompactMessage renders the short per-slot object used by updateseq
// bodies: sequence position, recno, and the stored message text.
func CompactMessage(seqNum, recno int, msgtext string) *Object {
	o := NewObject()
	o.Int("signseqnum", seqNum)
	o.String("recno_zx", strconv.Itoa(recno))
	o.String("msgtext", msgtext)
	return o
}
