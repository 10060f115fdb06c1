// Code generated by ent, DO NOT EDIT.

package banner

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the banner type in the database.
	Label = "banner"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "recno"
	// FieldTemplateRecno holds the string denoting the template_recno field in the database.
	FieldTemplateRecno = "template_recno"
	// FieldRecDtsec holds the string denoting the rec_dtsec field in the database.
	FieldRecDtsec = "rec_dtsec"
	// FieldDuration holds the string denoting the duration field in the database.
	FieldDuration = "duration"
	// FieldMsgtype holds the string denoting the msgtype field in the database.
	FieldMsgtype = "msgtype"
	// FieldText1 holds the string denoting the text1 field in the database.
	FieldText1 = "text1"
	// FieldText2 holds the string denoting the text2 field in the database.
	FieldText2 = "text2"
	// FieldText3 holds the string denoting the text3 field in the database.
	FieldText3 = "text3"
	// FieldText4 holds the string denoting the text4 field in the database.
	FieldText4 = "text4"
	// FieldText5 holds the string denoting the text5 field in the database.
	FieldText5 = "text5"
	// FieldDetails holds the string denoting the details field in the database.
	FieldDetails = "details"
	// FieldAudioGroup holds the string denoting the audio_group field in the database.
	FieldAudioGroup = "audio_group"
	// FieldPlaytimeDuration holds the string denoting the playtime_duration field in the database.
	FieldPlaytimeDuration = "playtime_duration"
	// FieldFlasherDuration holds the string denoting the flasher_duration field in the database.
	FieldFlasherDuration = "flasher_duration"
	// FieldLightSignal holds the string denoting the light_signal field in the database.
	FieldLightSignal = "light_signal"
	// FieldLightDuration holds the string denoting the light_duration field in the database.
	FieldLightDuration = "light_duration"
	// FieldAudioTtsGain holds the string denoting the audio_tts_gain field in the database.
	FieldAudioTtsGain = "audio_tts_gain"
	// FieldFlashNewMessage holds the string denoting the flash_new_message field in the database.
	FieldFlashNewMessage = "flash_new_message"
	// FieldVisibleTime holds the string denoting the visible_time field in the database.
	FieldVisibleTime = "visible_time"
	// FieldVisibleFrequency holds the string denoting the visible_frequency field in the database.
	FieldVisibleFrequency = "visible_frequency"
	// FieldVisibleDuration holds the string denoting the visible_duration field in the database.
	FieldVisibleDuration = "visible_duration"
	// FieldRecordVoiceAtLaunchSelection holds the string denoting the record_voice_at_launch_selection field in the database.
	FieldRecordVoiceAtLaunchSelection = "record_voice_at_launch_selection"
	// FieldRecordVoiceAtLaunch holds the string denoting the record_voice_at_launch field in the database.
	FieldRecordVoiceAtLaunch = "record_voice_at_launch"
	// FieldAudioRecordedGain holds the string denoting the audio_recorded_gain field in the database.
	FieldAudioRecordedGain = "audio_recorded_gain"
	// FieldPaDeliveryMode holds the string denoting the pa_delivery_mode field in the database.
	FieldPaDeliveryMode = "pa_delivery_mode"
	// FieldAudioRepeat holds the string denoting the audio_repeat field in the database.
	FieldAudioRepeat = "audio_repeat"
	// FieldSpeed holds the string denoting the speed field in the database.
	FieldSpeed = "speed"
	// FieldPriority holds the string denoting the priority field in the database.
	FieldPriority = "priority"
	// FieldExpirePriority holds the string denoting the expire_priority field in the database.
	FieldExpirePriority = "expire_priority"
	// FieldPriorityDuration holds the string denoting the priority_duration field in the database.
	FieldPriorityDuration = "priority_duration"
	// FieldPagePriorityAtLaunch holds the string denoting the page_priority_at_launch field in the database.
	FieldPagePriorityAtLaunch = "page_priority_at_launch"
	// FieldMultimediaType holds the string denoting the multimedia_type field in the database.
	FieldMultimediaType = "multimedia_type"
	// FieldMultimediaAudioGain holds the string denoting the multimedia_audio_gain field in the database.
	FieldMultimediaAudioGain = "multimedia_audio_gain"
	// FieldWebpageURL holds the string denoting the webpage_url field in the database.
	FieldWebpageURL = "webpage_url"
	// FieldVideoFile holds the string denoting the video_file field in the database.
	FieldVideoFile = "video_file"
	// FieldShowCamera holds the string denoting the show_camera field in the database.
	FieldShowCamera = "show_camera"
	// FieldCameraDeviceID holds the string denoting the camera_device_id field in the database.
	FieldCameraDeviceID = "camera_device_id"
	// FieldLaunchPin holds the string denoting the launch_pin field in the database.
	FieldLaunchPin = "launch_pin"
	// Table holds the table name of the banner in the database.
	Table = "banners"
)

// Columns holds all SQL columns for banner fields.
var Columns = []string{
	FieldID,
	FieldTemplateRecno,
	FieldRecDtsec,
	FieldDuration,
	FieldMsgtype,
	FieldText1,
	FieldText2,
	FieldText3,
	FieldText4,
	FieldText5,
	FieldDetails,
	FieldAudioGroup,
	FieldPlaytimeDuration,
	FieldFlasherDuration,
	FieldLightSignal,
	FieldLightDuration,
	FieldAudioTtsGain,
	FieldFlashNewMessage,
	FieldVisibleTime,
	FieldVisibleFrequency,
	FieldVisibleDuration,
	FieldRecordVoiceAtLaunchSelection,
	FieldRecordVoiceAtLaunch,
	FieldAudioRecordedGain,
	FieldPaDeliveryMode,
	FieldAudioRepeat,
	FieldSpeed,
	FieldPriority,
	FieldExpirePriority,
	FieldPriorityDuration,
	FieldPagePriorityAtLaunch,
	FieldMultimediaType,
	FieldMultimediaAudioGain,
	FieldWebpageURL,
	FieldVideoFile,
	FieldShowCamera,
	FieldCameraDeviceID,
	FieldLaunchPin,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTemplateRecno holds the default value on creation for the "template_recno" field.
	DefaultTemplateRecno int
	// DefaultRecDtsec holds the default value on creation for the "rec_dtsec" field.
	DefaultRecDtsec string
	// DefaultDuration holds the default value on creation for the "duration" field.
	DefaultDuration int
	// DefaultMsgtype holds the default value on creation for the "msgtype" field.
	DefaultMsgtype string
	// DefaultText1 holds the default value on creation for the "text1" field.
	DefaultText1 string
	// DefaultText2 holds the default value on creation for the "text2" field.
	DefaultText2 string
	// DefaultText3 holds the default value on creation for the "text3" field.
	DefaultText3 string
	// DefaultText4 holds the default value on creation for the "text4" field.
	DefaultText4 string
	// DefaultText5 holds the default value on creation for the "text5" field.
	DefaultText5 string
	// DefaultDetails holds the default value on creation for the "details" field.
	DefaultDetails string
	// DefaultAudioGroup holds the default value on creation for the "audio_group" field.
	DefaultAudioGroup string
	// DefaultPlaytimeDuration holds the default value on creation for the "playtime_duration" field.
	DefaultPlaytimeDuration int
	// DefaultFlasherDuration holds the default value on creation for the "flasher_duration" field.
	DefaultFlasherDuration int
	// DefaultLightSignal holds the default value on creation for the "light_signal" field.
	DefaultLightSignal string
	// DefaultLightDuration holds the default value on creation for the "light_duration" field.
	DefaultLightDuration int
	// DefaultAudioTtsGain holds the default value on creation for the "audio_tts_gain" field.
	DefaultAudioTtsGain int
	// DefaultFlashNewMessage holds the default value on creation for the "flash_new_message" field.
	DefaultFlashNewMessage string
	// DefaultVisibleTime holds the default value on creation for the "visible_time" field.
	DefaultVisibleTime string
	// DefaultVisibleFrequency holds the default value on creation for the "visible_frequency" field.
	DefaultVisibleFrequency string
	// DefaultVisibleDuration holds the default value on creation for the "visible_duration" field.
	DefaultVisibleDuration string
	// DefaultRecordVoiceAtLaunchSelection holds the default value on creation for the "record_voice_at_launch_selection" field.
	DefaultRecordVoiceAtLaunchSelection int
	// DefaultRecordVoiceAtLaunch holds the default value on creation for the "record_voice_at_launch" field.
	DefaultRecordVoiceAtLaunch string
	// DefaultAudioRecordedGain holds the default value on creation for the "audio_recorded_gain" field.
	DefaultAudioRecordedGain int
	// DefaultPaDeliveryMode holds the default value on creation for the "pa_delivery_mode" field.
	DefaultPaDeliveryMode string
	// DefaultAudioRepeat holds the default value on creation for the "audio_repeat" field.
	DefaultAudioRepeat string
	// DefaultSpeed holds the default value on creation for the "speed" field.
	DefaultSpeed int
	// DefaultPriority holds the default value on creation for the "priority" field.
	DefaultPriority int
	// DefaultExpirePriority holds the default value on creation for the "expire_priority" field.
	DefaultExpirePriority int
	// DefaultPriorityDuration holds the default value on creation for the "priority_duration" field.
	DefaultPriorityDuration int
	// DefaultPagePriorityAtLaunch holds the default value on creation for the "page_priority_at_launch" field.
	DefaultPagePriorityAtLaunch int
	// DefaultMultimediaType holds the default value on creation for the "multimedia_type" field.
	DefaultMultimediaType string
	// DefaultMultimediaAudioGain holds the default value on creation for the "multimedia_audio_gain" field.
	DefaultMultimediaAudioGain int
	// DefaultWebpageURL holds the default value on creation for the "webpage_url" field.
	DefaultWebpageURL string
	// DefaultVideoFile holds the default value on creation for the "video_file" field.
	DefaultVideoFile string
	// DefaultShowCamera holds the default value on creation for the "show_camera" field.
	DefaultShowCamera string
	// DefaultCameraDeviceID holds the default value on creation for the "camera_device_id" field.
	DefaultCameraDeviceID string
	// DefaultLaunchPin holds the default value on creation for the "launch_pin" field.
	DefaultLaunchPin string
)

// OrderOption defines the ordering options for the Banner queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTemplateRecno orders the results by the template_recno field.
func ByTemplateRecno(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTemplateRecno, opts...).ToFunc()
}

// ByRecDtsec orders the results by the rec_dtsec field.
func ByRecDtsec(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecDtsec, opts...).ToFunc()
}

// ByDuration orders the results by the duration field.
func ByDuration(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDuration, opts...).ToFunc()
}

// ByMsgtype orders the results by the msgtype field.
func ByMsgtype(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMsgtype, opts...).ToFunc()
}

// ByText1 orders the results by the text1 field.
func ByText1(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldText1, opts...).ToFunc()
}

// ByText2 orders the results by the text2 field.
func ByText2(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldText2, opts...).ToFunc()
}

// ByText3 orders the results by the text3 field.
func ByText3(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldText3, opts...).ToFunc()
}

// ByText4 orders the results by the text4 field.
func ByText4(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldText4, opts...).ToFunc()
}

// ByText5 orders the results by the text5 field.
func ByText5(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldText5, opts...).ToFunc()
}

// ByDetails orders the results by the details field.
func ByDetails(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDetails, opts...).ToFunc()
}

// ByAudioGroup orders the results by the audio_group field.
func ByAudioGroup(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAudioGroup, opts...).ToFunc()
}

// ByPlaytimeDuration orders the results by the playtime_duration field.
func ByPlaytimeDuration(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlaytimeDuration, opts...).ToFunc()
}

// ByFlasherDuration orders the results by the flasher_duration field.
func ByFlasherDuration(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFlasherDuration, opts...).ToFunc()
}

// ByLightSignal orders the results by the light_signal field.
func ByLightSignal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLightSignal, opts...).ToFunc()
}

// ByLightDuration orders the results by the light_duration field.
func ByLightDuration(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLightDuration, opts...).ToFunc()
}

// ByAudioTtsGain orders the results by the audio_tts_gain field.
func ByAudioTtsGain(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAudioTtsGain, opts...).ToFunc()
}

// ByFlashNewMessage orders the results by the flash_new_message field.
func ByFlashNewMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFlashNewMessage, opts...).ToFunc()
}

// ByVisibleTime orders the results by the visible_time field.
func ByVisibleTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVisibleTime, opts...).ToFunc()
}

// ByVisibleFrequency orders the results by the visible_frequency field.
func ByVisibleFrequency(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVisibleFrequency, opts...).ToFunc()
}

// ByVisibleDuration orders the results by the visible_duration field.
func ByVisibleDuration(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVisibleDuration, opts...).ToFunc()
}

// ByRecordVoiceAtLaunchSelection orders the results by the record_voice_at_launch_selection field.
func ByRecordVoiceAtLaunchSelection(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecordVoiceAtLaunchSelection, opts...).ToFunc()
}

// ByRecordVoiceAtLaunch orders the results by the record_voice_at_launch field.
func ByRecordVoiceAtLaunch(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecordVoiceAtLaunch, opts...).ToFunc()
}

// ByAudioRecordedGain orders the results by the audio_recorded_gain field.
func ByAudioRecordedGain(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAudioRecordedGain, opts...).ToFunc()
}

// ByPaDeliveryMode orders the results by the pa_delivery_mode field.
func ByPaDeliveryMode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPaDeliveryMode, opts...).ToFunc()
}

// ByAudioRepeat orders the results by the audio_repeat field.
func ByAudioRepeat(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAudioRepeat, opts...).ToFunc()
}

// BySpeed orders the results by the speed field.
func BySpeed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSpeed, opts...).ToFunc()
}

// ByPriority orders the results by the priority field.
func ByPriority(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPriority, opts...).ToFunc()
}

// ByExpirePriority orders the results by the expire_priority field.
func ByExpirePriority(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExpirePriority, opts...).ToFunc()
}

// ByPriorityDuration orders the results by the priority_duration field.
func ByPriorityDuration(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPriorityDuration, opts...).ToFunc()
}

// ByPagePriorityAtLaunch orders the results by the page_priority_at_launch field.
func ByPagePriorityAtLaunch(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPagePriorityAtLaunch, opts...).ToFunc()
}

// ByMultimediaType orders the results by the multimedia_type field.
func ByMultimediaType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMultimediaType, opts...).ToFunc()
}

// ByMultimediaAudioGain orders the results by the multimedia_audio_gain field.
func ByMultimediaAudioGain(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMultimediaAudioGain, opts...).ToFunc()
}

// ByWebpageURL orders the results by the webpage_url field.
func ByWebpageURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWebpageURL, opts...).ToFunc()
}

// ByVideoFile orders the results by the video_file field.
func ByVideoFile(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVideoFile, opts...).ToFunc()
}

// ByShowCamera orders the results by the show_camera field.
func ByShowCamera(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldShowCamera, opts...).ToFunc()
}

// ByCameraDeviceID orders the results by the camera_device_id field.
func ByCameraDeviceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCameraDeviceID, opts...).ToFunc()
}

// ByLaunchPin orders the results by the launch_pin field.
func ByLaunchPin(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLaunchPin, opts...).ToFunc()
}
