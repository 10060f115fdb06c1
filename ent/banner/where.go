// Code generated by ent, DO NOT EDIT.

package banner

import (
	"entgo.io/ent/dialect/sql"
	"github.com/messagenet/bannerd/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Banner {
	return predicate.Banner(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Banner {
	return predicate.Banner(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Banner {
	return predicate.Banner(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Banner {
	return predicate.Banner(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Banner {
	return predicate.Banner(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Banner {
	return predicate.Banner(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Banner {
	return predicate.Banner(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Banner {
	return predicate.Banner(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Banner {
	return predicate.Banner(sql.FieldLTE(FieldID, id))
}

// TemplateRecno applies equality check predicate on the "template_recno" field. It's identical to TemplateRecnoEQ.
func TemplateRecno(v int) predicate.Banner {
	return predicate.Banner(sql.FieldEQ(FieldTemplateRecno, v))
}

// RecDtsec applies equality check predicate on the "rec_dtsec" field. It's identical to RecDtsecEQ.
func RecDtsec(v string) predicate.Banner {
	return predicate.Banner(sql.FieldEQ(FieldRecDtsec, v))
}

// Duration applies equality check predicate on the "duration" field. It's identical to DurationEQ.
func Duration(v int) predicate.Banner {
	return predicate.Banner(sql.FieldEQ(FieldDuration, v))
}

// Msgtype applies equality check predicate on the "msgtype" field. It's identical to MsgtypeEQ.
func Msgtype(v string) predicate.Banner {
	return predicate.Banner(sql.FieldEQ(FieldMsgtype, v))
}

// Text1 applies equality check predicate on the "text1" field. It's identical to Text1EQ.
func Text1(v string) predicate.Banner {
	return predicate.Banner(sql.FieldEQ(FieldText1, v))
}

// Text2 applies equality check predicate on the "text2" field. It's identical to Text2EQ.
func Text2(v string) predicate.Banner {
	return predicate.Banner(sql.FieldEQ(FieldText2, v))
}

// Text3 applies equality check predicate on the "text3" field. It's identical to Text3EQ.
func Text3(v string) predicate.Banner {
	return predicate.Banner(sql.FieldEQ(FieldText3, v))
}

// Text4 applies equality check predicate on the "text4" field. It's identical to Text4EQ.
func Text4(v string) predicate.Banner {
	return predicate.Banner(sql.FieldEQ(FieldText4, v))
}

// Text5 applies equality check predicate on the "text5" field. It's identical to Text5EQ.
func Text5(v string) predicate.Banner {
	return predicate.Banner(sql.FieldEQ(FieldText5, v))
}

// Details applies equality check predicate on the "details" field. It's identical to DetailsEQ.
func Details(v string) predicate.Banner {
	return predicate.Banner(sql.FieldEQ(FieldDetails, v))
}

// AudioGroup applies equality check predicate on the "audio_group" field. It's identical to AudioGroupEQ.
func AudioGroup(v string) predicate.Banner {
	return predicate.Banner(sql.FieldEQ(FieldAudioGroup, v))
}

// PlaytimeDuration applies equality check predicate on the "playtime_duration" field. It's identical to PlaytimeDurationEQ.
func PlaytimeDuration(v int) predicate.Banner {
	return predicate.Banner(sql.FieldEQ(FieldPlaytimeDuration, v))
}

// FlasherDuration applies equality check predicate on the "flasher_duration" field. It's identical to FlasherDurationEQ.
func FlasherDuration(v int) predicate.Banner {
	return predicate.Banner(sql.FieldEQ(FieldFlasherDuration, v))
}

// LightSignal applies equality check predicate on the "light_signal" field. It's identical to LightSignalEQ.
func LightSignal(v string) predicate.Banner {
	return predicate.Banner(sql.FieldEQ(FieldLightSignal, v))
}

// LightDuration applies equality check predicate on the "light_duration" field. It's identical to LightDurationEQ.
func LightDuration(v int) predicate.Banner {
	return predicate.Banner(sql.FieldEQ(FieldLightDuration, v))
}

// AudioTtsGain applies equality check predicate on the "audio_tts_gain" field. It's identical to AudioTtsGainEQ.
func AudioTtsGain(v int) predicate.Banner {
	return predicate.Banner(sql.FieldEQ(FieldAudioTtsGain, v))
}

// FlashNewMessage applies equality check predicate on the "flash_new_message" field. It's identical to FlashNewMessageEQ.
func FlashNewMessage(v string) predicate.Banner {
	return predicate.Banner(sql.FieldEQ(FieldFlashNewMessage, v))
}

// VisibleTime applies equality check predicate on the "visible_time" field. It's identical to VisibleTimeEQ.
func VisibleTime(v string) predicate.Banner {
	return predicate.Banner(sql.FieldEQ(FieldVisibleTime, v))
}

// VisibleFrequency applies equality check predicate on the "visible_frequency" field. It's identical to VisibleFrequencyEQ.
func VisibleFrequency(v string) predicate.Banner {
	return predicate.Banner(sql.FieldEQ(FieldVisibleFrequency, v))
}

// VisibleDuration applies equality check predicate on the "visible_duration" field. It's identical to VisibleDurationEQ.
func VisibleDuration(v string) predicate.Banner {
	return predicate.Banner(sql.FieldEQ(FieldVisibleDuration, v))
}

// RecordVoiceAtLaunchSelection applies equality check predicate on the "record_voice_at_launch_selection" field. It's identical to RecordVoiceAtLaunchSelectionEQ.
func RecordVoiceAtLaunchSelection(v int) predicate.Banner {
	return predicate.Banner(sql.FieldEQ(FieldRecordVoiceAtLaunchSelection, v))
}

// RecordVoiceAtLaunch applies equality check predicate on the "record_voice_at_launch" field. It's identical to RecordVoiceAtLaunchEQ.
func RecordVoiceAtLaunch(v string) predicate.Banner {
	return predicate.Banner(sql.FieldEQ(FieldRecordVoiceAtLaunch, v))
}

// AudioRecordedGain applies equality check predicate on the "audio_recorded_gain" field. It's identical to AudioRecordedGainEQ.
func AudioRecordedGain(v int) predicate.Banner {
	return predicate.Banner(sql.FieldEQ(FieldAudioRecordedGain, v))
}

// PaDeliveryMode applies equality check predicate on the "pa_delivery_mode" field. It's identical to PaDeliveryModeEQ.
func PaDeliveryMode(v string) predicate.Banner {
	return predicate.Banner(sql.FieldEQ(FieldPaDeliveryMode, v))
}

// AudioRepeat applies equality check predicate on the "audio_repeat" field. It's identical to AudioRepeatEQ.
func AudioRepeat(v string) predicate.Banner {
	return predicate.Banner(sql.FieldEQ(FieldAudioRepeat, v))
}

// Speed applies equality check predicate on the "speed" field. It's identical to SpeedEQ.
func Speed(v int) predicate.Banner {
	return predicate.Banner(sql.FieldEQ(FieldSpeed, v))
}

// Priority applies equality check predicate on the "priority" field. It's identical to PriorityEQ.
func Priority(v int) predicate.Banner {
	return predicate.Banner(sql.FieldEQ(FieldPriority, v))
}

// ExpirePriority applies equality check predicate on the "expire_priority" field. It's identical to ExpirePriorityEQ.
func ExpirePriority(v int) predicate.Banner {
	return predicate.Banner(sql.FieldEQ(FieldExpirePriority, v))
}

// PriorityDuration applies equality check predicate on the "priority_duration" field. It's identical to PriorityDurationEQ.
func PriorityDuration(v int) predicate.Banner {
	return predicate.Banner(sql.FieldEQ(FieldPriorityDuration, v))
}

// PagePriorityAtLaunch applies equality check predicate on the "page_priority_at_launch" field. It's identical to PagePriorityAtLaunchEQ.
func PagePriorityAtLaunch(v int) predicate.Banner {
	return predicate.Banner(sql.FieldEQ(FieldPagePriorityAtLaunch, v))
}

// MultimediaType applies equality check predicate on the "multimedia_type" field. It's identical to MultimediaTypeEQ.
func MultimediaType(v string) predicate.Banner {
	return predicate.Banner(sql.FieldEQ(FieldMultimediaType, v))
}

// MultimediaAudioGain applies equality check predicate on the "multimedia_audio_gain" field. It's identical to MultimediaAudioGainEQ.
func MultimediaAudioGain(v int) predicate.Banner {
	return predicate.Banner(sql.FieldEQ(FieldMultimediaAudioGain, v))
}

// WebpageURL applies equality check predicate on the "webpage_url" field. It's identical to WebpageURLEQ.
func WebpageURL(v string) predicate.Banner {
	return predicate.Banner(sql.FieldEQ(FieldWebpageURL, v))
}

// VideoFile applies equality check predicate on the "video_file" field. It's identical to VideoFileEQ.
func VideoFile(v string) predicate.Banner {
	return predicate.Banner(sql.FieldEQ(FieldVideoFile, v))
}

// ShowCamera applies equality check predicate on the "show_camera" field. It's identical to ShowCameraEQ.
func ShowCamera(v string) predicate.Banner {
	return predicate.Banner(sql.FieldEQ(FieldShowCamera, v))
}

// CameraDeviceID applies equality check predicate on the "camera_device_id" field. It's identical to CameraDeviceIDEQ.
func CameraDeviceID(v string) predicate.Banner {
	return predicate.Banner(sql.FieldEQ(FieldCameraDeviceID, v))
}

// LaunchPin applies equality check predicate on the "launch_pin" field. It's identical to LaunchPinEQ.
func LaunchPin(v string) predicate.Banner {
	return predicate.Banner(sql.FieldEQ(FieldLaunchPin, v))
}

// TemplateRecnoEQ applies the EQ predicate on the "template_recno" field.
func TemplateRecnoEQ(v int) predicate.Banner {
	return predicate.Banner(sql.FieldEQ(FieldTemplateRecno, v))
}

// TemplateRecnoNEQ applies the NEQ predicate on the "template_recno" field.
func TemplateRecnoNEQ(v int) predicate.Banner {
	return predicate.Banner(sql.FieldNEQ(FieldTemplateRecno, v))
}

// TemplateRecnoIn applies the In predicate on the "template_recno" field.
func TemplateRecnoIn(vs ...int) predicate.Banner {
	return predicate.Banner(sql.FieldIn(FieldTemplateRecno, vs...))
}

// TemplateRecnoNotIn applies the NotIn predicate on the "template_recno" field.
func TemplateRecnoNotIn(vs ...int) predicate.Banner {
	return predicate.Banner(sql.FieldNotIn(FieldTemplateRecno, vs...))
}

// TemplateRecnoGT applies the GT predicate on the "template_recno" field.
func TemplateRecnoGT(v int) predicate.Banner {
	return predicate.Banner(sql.FieldGT(FieldTemplateRecno, v))
}

// TemplateRecnoGTE applies the GTE predicate on the "template_recno" field.
func TemplateRecnoGTE(v int) predicate.Banner {
	return predicate.Banner(sql.FieldGTE(FieldTemplateRecno, v))
}

// TemplateRecnoLT applies the LT predicate on the "template_recno" field.
func TemplateRecnoLT(v int) predicate.Banner {
	return predicate.Banner(sql.FieldLT(FieldTemplateRecno, v))
}

// TemplateRecnoLTE applies the LTE predicate on the "template_recno" field.
func TemplateRecnoLTE(v int) predicate.Banner {
	return predicate.Banner(sql.FieldLTE(FieldTemplateRecno, v))
}

// RecDtsecEQ applies the EQ predicate on the "rec_dtsec" field.
func RecDtsecEQ(v string) predicate.Banner {
	return predicate.Banner(sql.FieldEQ(FieldRecDtsec, v))
}

// RecDtsecNEQ applies the NEQ predicate on the "rec_dtsec" field.
func RecDtsecNEQ(v string) predicate.Banner {
	return predicate.Banner(sql.FieldNEQ(FieldRecDtsec, v))
}

// RecDtsecIn applies the In predicate on the "rec_dtsec" field.
func RecDtsecIn(vs ...string) predicate.Banner {
	return predicate.Banner(sql.FieldIn(FieldRecDtsec, vs...))
}

// RecDtsecNotIn applies the NotIn predicate on the "rec_dtsec" field.
func RecDtsecNotIn(vs ...string) predicate.Banner {
	return predicate.Banner(sql.FieldNotIn(FieldRecDtsec, vs...))
}

// RecDtsecGT applies the GT predicate on the "rec_dtsec" field.
func RecDtsecGT(v string) predicate.Banner {
	return predicate.Banner(sql.FieldGT(FieldRecDtsec, v))
}

// RecDtsecGTE applies the GTE predicate on the "rec_dtsec" field.
func RecDtsecGTE(v string) predicate.Banner {
	return predicate.Banner(sql.FieldGTE(FieldRecDtsec, v))
}

// RecDtsecLT applies the LT predicate on the "rec_dtsec" field.
func RecDtsecLT(v string) predicate.Banner {
	return predicate.Banner(sql.FieldLT(FieldRecDtsec, v))
}

// RecDtsecLTE applies the LTE predicate on the "rec_dtsec" field.
func RecDtsecLTE(v string) predicate.Banner {
	return predicate.Banner(sql.FieldLTE(FieldRecDtsec, v))
}

// RecDtsecContains applies the Contains predicate on the "rec_dtsec" field.
func RecDtsecContains(v string) predicate.Banner {
	return predicate.Banner(sql.FieldContains(FieldRecDtsec, v))
}

// RecDtsecHasPrefix applies the HasPrefix predicate on the "rec_dtsec" field.
func RecDtsecHasPrefix(v string) predicate.Banner {
	return predicate.Banner(sql.FieldHasPrefix(FieldRecDtsec, v))
}

// RecDtsecHasSuffix applies the HasSuffix predicate on the "rec_dtsec" field.
func RecDtsecHasSuffix(v string) predicate.Banner {
	return predicate.Banner(sql.FieldHasSuffix(FieldRecDtsec, v))
}

// RecDtsecEqualFold applies the EqualFold predicate on the "rec_dtsec" field.
func RecDtsecEqualFold(v string) predicate.Banner {
	return predicate.Banner(sql.FieldEqualFold(FieldRecDtsec, v))
}

// RecDtsecContainsFold applies the ContainsFold predicate on the "rec_dtsec" field.
func RecDtsecContainsFold(v string) predicate.Banner {
	return predicate.Banner(sql.FieldContainsFold(FieldRecDtsec, v))
}

// DurationEQ applies the EQ predicate on the "duration" field.
func DurationEQ(v int) predicate.Banner {
	return predicate.Banner(sql.FieldEQ(FieldDuration, v))
}

// DurationNEQ applies the NEQ predicate on the "duration" field.
func DurationNEQ(v int) predicate.Banner {
	return predicate.Banner(sql.FieldNEQ(FieldDuration, v))
}

// DurationIn applies the In predicate on the "duration" field.
func DurationIn(vs ...int) predicate.Banner {
	return predicate.Banner(sql.FieldIn(FieldDuration, vs...))
}

// DurationNotIn applies the NotIn predicate on the "duration" field.
func DurationNotIn(vs ...int) predicate.Banner {
	return predicate.Banner(sql.FieldNotIn(FieldDuration, vs...))
}

// DurationGT applies the GT predicate on the "duration" field.
func DurationGT(v int) predicate.Banner {
	return predicate.Banner(sql.FieldGT(FieldDuration, v))
}

// DurationGTE applies the GTE predicate on the "duration" field.
func DurationGTE(v int) predicate.Banner {
	return predicate.Banner(sql.FieldGTE(FieldDuration, v))
}

// DurationLT applies the LT predicate on the "duration" field.
func DurationLT(v int) predicate.Banner {
	return predicate.Banner(sql.FieldLT(FieldDuration, v))
}

// DurationLTE applies the LTE predicate on the "duration" field.
func DurationLTE(v int) predicate.Banner {
	return predicate.Banner(sql.FieldLTE(FieldDuration, v))
}

// MsgtypeEQ applies the EQ predicate on the "msgtype" field.
func MsgtypeEQ(v string) predicate.Banner {
	return predicate.Banner(sql.FieldEQ(FieldMsgtype, v))
}

// MsgtypeNEQ applies the NEQ predicate on the "msgtype" field.
func MsgtypeNEQ(v string) predicate.Banner {
	return predicate.Banner(sql.FieldNEQ(FieldMsgtype, v))
}

// MsgtypeIn applies the In predicate on the "msgtype" field.
func MsgtypeIn(vs ...string) predicate.Banner {
	return predicate.Banner(sql.FieldIn(FieldMsgtype, vs...))
}

// MsgtypeNotIn applies the NotIn predicate on the "msgtype" field.
func MsgtypeNotIn(vs ...string) predicate.Banner {
	return predicate.Banner(sql.FieldNotIn(FieldMsgtype, vs...))
}

// MsgtypeGT applies the GT predicate on the "msgtype" field.
func MsgtypeGT(v string) predicate.Banner {
	return predicate.Banner(sql.FieldGT(FieldMsgtype, v))
}

// MsgtypeGTE applies the GTE predicate on the "msgtype" field.
func MsgtypeGTE(v string) predicate.Banner {
	return predicate.Banner(sql.FieldGTE(FieldMsgtype, v))
}

// MsgtypeLT applies the LT predicate on the "msgtype" field.
func MsgtypeLT(v string) predicate.Banner {
	return predicate.Banner(sql.FieldLT(FieldMsgtype, v))
}

// MsgtypeLTE applies the LTE predicate on the "msgtype" field.
func MsgtypeLTE(v string) predicate.Banner {
	return predicate.Banner(sql.FieldLTE(FieldMsgtype, v))
}

// MsgtypeContains applies the Contains predicate on the "msgtype" field.
func MsgtypeContains(v string) predicate.Banner {
	return predicate.Banner(sql.FieldContains(FieldMsgtype, v))
}

// MsgtypeHasPrefix applies the HasPrefix predicate on the "msgtype" field.
func MsgtypeHasPrefix(v string) predicate.Banner {
	return predicate.Banner(sql.FieldHasPrefix(FieldMsgtype, v))
}

// MsgtypeHasSuffix applies the HasSuffix predicate on the "msgtype" field.
func MsgtypeHasSuffix(v string) predicate.Banner {
	return predicate.Banner(sql.FieldHasSuffix(FieldMsgtype, v))
}

// MsgtypeEqualFold applies the EqualFold predicate on the "msgtype" field.
func MsgtypeEqualFold(v string) predicate.Banner {
	return predicate.Banner(sql.FieldEqualFold(FieldMsgtype, v))
}

// MsgtypeContainsFold applies the ContainsFold predicate on the "msgtype" field.
func MsgtypeContainsFold(v string) predicate.Banner {
	return predicate.Banner(sql.FieldContainsFold(FieldMsgtype, v))
}

// Text1EQ applies the EQ predicate on the "text1" field.
func Text1EQ(v string) predicate.Banner {
	return predicate.Banner(sql.FieldEQ(FieldText1, v))
}

// Text1NEQ applies the NEQ predicate on the "text1" field.
func Text1NEQ(v string) predicate.Banner {
	return predicate.Banner(sql.FieldNEQ(FieldText1, v))
}

// Text1In applies the In predicate on the "text1" field.
func Text1In(vs ...string) predicate.Banner {
	return predicate.Banner(sql.FieldIn(FieldText1, vs...))
}

// Text1NotIn applies the NotIn predicate on the "text1" field.
func Text1NotIn(vs ...string) predicate.Banner {
	return predicate.Banner(sql.FieldNotIn(FieldText1, vs...))
}

// Text1GT applies the GT predicate on the "text1" field.
func Text1GT(v string) predicate.Banner {
	return predicate.Banner(sql.FieldGT(FieldText1, v))
}

// Text1GTE applies the GTE predicate on the "text1" field.
func Text1GTE(v string) predicate.Banner {
	return predicate.Banner(sql.FieldGTE(FieldText1, v))
}

// Text1LT applies the LT predicate on the "text1" field.
func Text1LT(v string) predicate.Banner {
	return predicate.Banner(sql.FieldLT(FieldText1, v))
}

// Text1LTE applies the LTE predicate on the "text1" field.
func Text1LTE(v string) predicate.Banner {
	return predicate.Banner(sql.FieldLTE(FieldText1, v))
}

// Text1Contains applies the Contains predicate on the "text1" field.
func Text1Contains(v string) predicate.Banner {
	return predicate.Banner(sql.FieldContains(FieldText1, v))
}

// Text1HasPrefix applies the HasPrefix predicate on the "text1" field.
func Text1HasPrefix(v string) predicate.Banner {
	return predicate.Banner(sql.FieldHasPrefix(FieldText1, v))
}

// Text1HasSuffix applies the HasSuffix predicate on the "text1" field.
func Text1HasSuffix(v string) predicate.Banner {
	return predicate.Banner(sql.FieldHasSuffix(FieldText1, v))
}

// Text1EqualFold applies the EqualFold predicate on the "text1" field.
func Text1EqualFold(v string) predicate.Banner {
	return predicate.Banner(sql.FieldEqualFold(FieldText1, v))
}

// Text1ContainsFold applies the ContainsFold predicate on the "text1" field.
func Text1ContainsFold(v string) predicate.Banner {
	return predicate.Banner(sql.FieldContainsFold(FieldText1, v))
}

// Text2EQ applies the EQ predicate on the "text2" field.
func Text2EQ(v string) predicate.Banner {
	return predicate.Banner(sql.FieldEQ(FieldText2, v))
}

// Text2NEQ applies the NEQ predicate on the "text2" field.
func Text2NEQ(v string) predicate.Banner {
	return predicate.Banner(sql.FieldNEQ(FieldText2, v))
}

// Text2In applies the In predicate on the "text2" field.
func Text2In(vs ...string) predicate.Banner {
	return predicate.Banner(sql.FieldIn(FieldText2, vs...))
}

// Text2NotIn applies the NotIn predicate on the "text2" field.
func Text2NotIn(vs ...string) predicate.Banner {
	return predicate.Banner(sql.FieldNotIn(FieldText2, vs...))
}

// Text2GT applies the GT predicate on the "text2" field.
func Text2GT(v string) predicate.Banner {
	return predicate.Banner(sql.FieldGT(FieldText2, v))
}

// Text2GTE applies the GTE predicate on the "text2" field.
func Text2GTE(v string) predicate.Banner {
	return predicate.Banner(sql.FieldGTE(FieldText2, v))
}

// Text2LT applies the LT predicate on the "text2" field.
func Text2LT(v string) predicate.Banner {
	return predicate.Banner(sql.FieldLT(FieldText2, v))
}

// Text2LTE applies the LTE predicate on the "text2" field.
func Text2LTE(v string) predicate.Banner {
	return predicate.Banner(sql.FieldLTE(FieldText2, v))
}

// Text2Contains applies the Contains predicate on the "text2" field.
func Text2Contains(v string) predicate.Banner {
	return predicate.Banner(sql.FieldContains(FieldText2, v))
}

// Text2HasPrefix applies the HasPrefix predicate on the "text2" field.
func Text2HasPrefix(v string) predicate.Banner {
	return predicate.Banner(sql.FieldHasPrefix(FieldText2, v))
}

// Text2HasSuffix applies the HasSuffix predicate on the "text2" field.
func Text2HasSuffix(v string) predicate.Banner {
	return predicate.Banner(sql.FieldHasSuffix(FieldText2, v))
}

// Text2EqualFold applies the EqualFold predicate on the "text2" field.
func Text2EqualFold(v string) predicate.Banner {
	return predicate.Banner(sql.FieldEqualFold(FieldText2, v))
}

// Text2ContainsFold applies the ContainsFold predicate on the "text2" field.
func Text2ContainsFold(v string) predicate.Banner {
	return predicate.Banner(sql.FieldContainsFold(FieldText2, v))
}

// Text3EQ applies the EQ predicate on the "text3" field.
func Text3EQ(v string) predicate.Banner {
	return predicate.Banner(sql.FieldEQ(FieldText3, v))
}

// Text3NEQ applies the NEQ predicate on the "text3" field.
func Text3NEQ(v string) predicate.Banner {
	return predicate.Banner(sql.FieldNEQ(FieldText3, v))
}

// Text3In applies the In predicate on the "text3" field.
func Text3In(vs ...string) predicate.Banner {
	return predicate.Banner(sql.FieldIn(FieldText3, vs...))
}

// Text3NotIn applies the NotIn predicate on the "text3" field.
func Text3NotIn(vs ...string) predicate.Banner {
	return predicate.Banner(sql.FieldNotIn(FieldText3, vs...))
}

// Text3GT applies the GT predicate on the "text3" field.
func Text3GT(v string) predicate.Banner {
	return predicate.Banner(sql.FieldGT(FieldText3, v))
}

// Text3GTE applies the GTE predicate on the "text3" field.
func Text3GTE(v string) predicate.Banner {
	return predicate.Banner(sql.FieldGTE(FieldText3, v))
}

// Text3LT applies the LT predicate on the "text3" field.
func Text3LT(v string) predicate.Banner {
	return predicate.Banner(sql.FieldLT(FieldText3, v))
}

// Text3LTE applies the LTE predicate on the "text3" field.
func Text3LTE(v string) predicate.Banner {
	return predicate.Banner(sql.FieldLTE(FieldText3, v))
}

// Text3Contains applies the Contains predicate on the "text3" field.
func Text3Contains(v string) predicate.Banner {
	return predicate.Banner(sql.FieldContains(FieldText3, v))
}

// Text3HasPrefix applies the HasPrefix predicate on the "text3" field.
func Text3HasPrefix(v string) predicate.Banner {
	return predicate.Banner(sql.FieldHasPrefix(FieldText3, v))
}

// Text3HasSuffix applies the HasSuffix predicate on the "text3" field.
func Text3HasSuffix(v string) predicate.Banner {
	return predicate.Banner(sql.FieldHasSuffix(FieldText3, v))
}

// Text3EqualFold applies the EqualFold predicate on the "text3" field.
func Text3EqualFold(v string) predicate.Banner {
	return predicate.Banner(sql.FieldEqualFold(FieldText3, v))
}

// Text3ContainsFold applies the ContainsFold predicate on the "text3" field.
func Text3ContainsFold(v string) predicate.Banner {
	return predicate.Banner(sql.FieldContainsFold(FieldText3, v))
}

// Text4EQ applies the EQ predicate on the "text4" field.
func Text4EQ(v string) predicate.Banner {
	return predicate.Banner(sql.FieldEQ(FieldText4, v))
}

// Text4NEQ applies the NEQ predicate on the "text4" field.
func Text4NEQ(v string) predicate.Banner {
	return predicate.Banner(sql.FieldNEQ(FieldText4, v))
}

// Text4In applies the In predicate on the "text4" field.
func Text4In(vs ...string) predicate.Banner {
	return predicate.Banner(sql.FieldIn(FieldText4, vs...))
}

// Text4NotIn applies the NotIn predicate on the "text4" field.
func Text4NotIn(vs ...string) predicate.Banner {
	return predicate.Banner(sql.FieldNotIn(FieldText4, vs...))
}

// Text4GT applies the GT predicate on the "text4" field.
func Text4GT(v string) predicate.Banner {
	return predicate.Banner(sql.FieldGT(FieldText4, v))
}

// Text4GTE applies the GTE predicate on the "text4" field.
func Text4GTE(v string) predicate.Banner {
	return predicate.Banner(sql.FieldGTE(FieldText4, v))
}

// Text4LT applies the LT predicate on the "text4" field.
func Text4LT(v string) predicate.Banner {
	return predicate.Banner(sql.FieldLT(FieldText4, v))
}

// Text4LTE applies the LTE predicate on the "text4" field.
func Text4LTE(v string) predicate.Banner {
	return predicate.Banner(sql.FieldLTE(FieldText4, v))
}

// Text4Contains applies the Contains predicate on the "text4" field.
func Text4Contains(v string) predicate.Banner {
	return predicate.Banner(sql.FieldContains(FieldText4, v))
}

// Text4HasPrefix applies the HasPrefix predicate on the "text4" field.
func Text4HasPrefix(v string) predicate.Banner {
	return predicate.Banner(sql.FieldHasPrefix(FieldText4, v))
}

// Text4HasSuffix applies the HasSuffix predicate on the "text4" field.
func Text4HasSuffix(v string) predicate.Banner {
	return predicate.Banner(sql.FieldHasSuffix(FieldText4, v))
}

// Text4EqualFold applies the EqualFold predicate on the "text4" field.
func Text4EqualFold(v string) predicate.Banner {
	return predicate.Banner(sql.FieldEqualFold(FieldText4, v))
}

// Text4ContainsFold applies the ContainsFold predicate on the "text4" field.
func Text4ContainsFold(v string) predicate.Banner {
	return predicate.Banner(sql.FieldContainsFold(FieldText4, v))
}

// Text5EQ applies the EQ predicate on the "text5" field.
func Text5EQ(v string) predicate.Banner {
	return predicate.Banner(sql.FieldEQ(FieldText5, v))
}

// Text5NEQ applies the NEQ predicate on the "text5" field.
func Text5NEQ(v string) predicate.Banner {
	return predicate.Banner(sql.FieldNEQ(FieldText5, v))
}

// Text5In applies the In predicate on the "text5" field.
func Text5In(vs ...string) predicate.Banner {
	return predicate.Banner(sql.FieldIn(FieldText5, vs...))
}

// Text5NotIn applies the NotIn predicate on the "text5" field.
func Text5NotIn(vs ...string) predicate.Banner {
	return predicate.Banner(sql.FieldNotIn(FieldText5, vs...))
}

// Text5GT applies the GT predicate on the "text5" field.
func Text5GT(v string) predicate.Banner {
	return predicate.Banner(sql.FieldGT(FieldText5, v))
}

// Text5GTE applies the GTE predicate on the "text5" field.
func Text5GTE(v string) predicate.Banner {
	return predicate.Banner(sql.FieldGTE(FieldText5, v))
}

// Text5LT applies the LT predicate on the "text5" field.
func Text5LT(v string) predicate.Banner {
	return predicate.Banner(sql.FieldLT(FieldText5, v))
}

// Text5LTE applies the LTE predicate on the "text5" field.
func Text5LTE(v string) predicate.Banner {
	return predicate.Banner(sql.FieldLTE(FieldText5, v))
}

// Text5Contains applies the Contains predicate on the "text5" field.
func Text5Contains(v string) predicate.Banner {
	return predicate.Banner(sql.FieldContains(FieldText5, v))
}

// Text5HasPrefix applies the HasPrefix predicate on the "text5" field.
func Text5HasPrefix(v string) predicate.Banner {
	return predicate.Banner(sql.FieldHasPrefix(FieldText5, v))
}

// Text5HasSuffix applies the HasSuffix predicate on the "text5" field.
func Text5HasSuffix(v string) predicate.Banner {
	return predicate.Banner(sql.FieldHasSuffix(FieldText5, v))
}

// Text5EqualFold applies the EqualFold predicate on the "text5" field.
func Text5EqualFold(v string) predicate.Banner {
	return predicate.Banner(sql.FieldEqualFold(FieldText5, v))
}

// Text5ContainsFold applies the ContainsFold predicate on the "text5" field.
func Text5ContainsFold(v string) predicate.Banner {
	return predicate.Banner(sql.FieldContainsFold(FieldText5, v))
}

// DetailsEQ applies the EQ predicate on the "details" field.
func DetailsEQ(v string) predicate.Banner {
	return predicate.Banner(sql.FieldEQ(FieldDetails, v))
}

// DetailsNEQ applies the NEQ predicate on the "details" field.
func DetailsNEQ(v string) predicate.Banner {
	return predicate.Banner(sql.FieldNEQ(FieldDetails, v))
}

// DetailsIn applies the In predicate on the "details" field.
func DetailsIn(vs ...string) predicate.Banner {
	return predicate.Banner(sql.FieldIn(FieldDetails, vs...))
}

// DetailsNotIn applies the NotIn predicate on the "details" field.
func DetailsNotIn(vs ...string) predicate.Banner {
	return predicate.Banner(sql.FieldNotIn(FieldDetails, vs...))
}

// DetailsGT applies the GT predicate on the "details" field.
func DetailsGT(v string) predicate.Banner {
	return predicate.Banner(sql.FieldGT(FieldDetails, v))
}

// DetailsGTE applies the GTE predicate on the "details" field.
func DetailsGTE(v string) predicate.Banner {
	return predicate.Banner(sql.FieldGTE(FieldDetails, v))
}

// DetailsLT applies the LT predicate on the "details" field.
func DetailsLT(v string) predicate.Banner {
	return predicate.Banner(sql.FieldLT(FieldDetails, v))
}

// DetailsLTE applies the LTE predicate on the "details" field.
func DetailsLTE(v string) predicate.Banner {
	return predicate.Banner(sql.FieldLTE(FieldDetails, v))
}

// DetailsContains applies the Contains predicate on the "details" field.
func DetailsContains(v string) predicate.Banner {
	return predicate.Banner(sql.FieldContains(FieldDetails, v))
}

// DetailsHasPrefix applies the HasPrefix predicate on the "details" field.
func DetailsHasPrefix(v string) predicate.Banner {
	return predicate.Banner(sql.FieldHasPrefix(FieldDetails, v))
}

// DetailsHasSuffix applies the HasSuffix predicate on the "details" field.
func DetailsHasSuffix(v string) predicate.Banner {
	return predicate.Banner(sql.FieldHasSuffix(FieldDetails, v))
}

// DetailsEqualFold applies the EqualFold predicate on the "details" field.
func DetailsEqualFold(v string) predicate.Banner {
	return predicate.Banner(sql.FieldEqualFold(FieldDetails, v))
}

// DetailsContainsFold applies the ContainsFold predicate on the "details" field.
func DetailsContainsFold(v string) predicate.Banner {
	return predicate.Banner(sql.FieldContainsFold(FieldDetails, v))
}

// AudioGroupEQ applies the EQ predicate on the "audio_group" field.
func AudioGroupEQ(v string) predicate.Banner {
	return predicate.Banner(sql.FieldEQ(FieldAudioGroup, v))
}

// AudioGroupNEQ applies the NEQ predicate on the "audio_group" field.
func AudioGroupNEQ(v string) predicate.Banner {
	return predicate.Banner(sql.FieldNEQ(FieldAudioGroup, v))
}

// AudioGroupIn applies the In predicate on the "audio_group" field.
func AudioGroupIn(vs ...string) predicate.Banner {
	return predicate.Banner(sql.FieldIn(FieldAudioGroup, vs...))
}

// AudioGroupNotIn applies the NotIn predicate on the "audio_group" field.
func AudioGroupNotIn(vs ...string) predicate.Banner {
	return predicate.Banner(sql.FieldNotIn(FieldAudioGroup, vs...))
}

// AudioGroupGT applies the GT predicate on the "audio_group" field.
func AudioGroupGT(v string) predicate.Banner {
	return predicate.Banner(sql.FieldGT(FieldAudioGroup, v))
}

// AudioGroupGTE applies the GTE predicate on the "audio_group" field.
func AudioGroupGTE(v string) predicate.Banner {
	return predicate.Banner(sql.FieldGTE(FieldAudioGroup, v))
}

// AudioGroupLT applies the LT predicate on the "audio_group" field.
func AudioGroupLT(v string) predicate.Banner {
	return predicate.Banner(sql.FieldLT(FieldAudioGroup, v))
}

// AudioGroupLTE applies the LTE predicate on the "audio_group" field.
func AudioGroupLTE(v string) predicate.Banner {
	return predicate.Banner(sql.FieldLTE(FieldAudioGroup, v))
}

// AudioGroupContains applies the Contains predicate on the "audio_group" field.
func AudioGroupContains(v string) predicate.Banner {
	return predicate.Banner(sql.FieldContains(FieldAudioGroup, v))
}

// AudioGroupHasPrefix applies the HasPrefix predicate on the "audio_group" field.
func AudioGroupHasPrefix(v string) predicate.Banner {
	return predicate.Banner(sql.FieldHasPrefix(FieldAudioGroup, v))
}

// AudioGroupHasSuffix applies the HasSuffix predicate on the "audio_group" field.
func AudioGroupHasSuffix(v string) predicate.Banner {
	return predicate.Banner(sql.FieldHasSuffix(FieldAudioGroup, v))
}

// AudioGroupEqualFold applies the EqualFold predicate on the "audio_group" field.
func AudioGroupEqualFold(v string) predicate.Banner {
	return predicate.Banner(sql.FieldEqualFold(FieldAudioGroup, v))
}

// AudioGroupContainsFold applies the ContainsFold predicate on the "audio_group" field.
func AudioGroupContainsFold(v string) predicate.Banner {
	return predicate.Banner(sql.FieldContainsFold(FieldAudioGroup, v))
}

// PlaytimeDurationEQ applies the EQ predicate on the "playtime_duration" field.
func PlaytimeDurationEQ(v int) predicate.Banner {
	return predicate.Banner(sql.FieldEQ(FieldPlaytimeDuration, v))
}

// PlaytimeDurationNEQ applies the NEQ predicate on the "playtime_duration" field.
func PlaytimeDurationNEQ(v int) predicate.Banner {
	return predicate.Banner(sql.FieldNEQ(FieldPlaytimeDuration, v))
}

// PlaytimeDurationIn applies the In predicate on the "playtime_duration" field.
func PlaytimeDurationIn(vs ...int) predicate.Banner {
	return predicate.Banner(sql.FieldIn(FieldPlaytimeDuration, vs...))
}

// PlaytimeDurationNotIn applies the NotIn predicate on the "playtime_duration" field.
func PlaytimeDurationNotIn(vs ...int) predicate.Banner {
	return predicate.Banner(sql.FieldNotIn(FieldPlaytimeDuration, vs...))
}

// PlaytimeDurationGT applies the GT predicate on the "playtime_duration" field.
func PlaytimeDurationGT(v int) predicate.Banner {
	return predicate.Banner(sql.FieldGT(FieldPlaytimeDuration, v))
}

// PlaytimeDurationGTE applies the GTE predicate on the "playtime_duration" field.
func PlaytimeDurationGTE(v int) predicate.Banner {
	return predicate.Banner(sql.FieldGTE(FieldPlaytimeDuration, v))
}

// PlaytimeDurationLT applies the LT predicate on the "playtime_duration" field.
func PlaytimeDurationLT(v int) predicate.Banner {
	return predicate.Banner(sql.FieldLT(FieldPlaytimeDuration, v))
}

// PlaytimeDurationLTE applies the LTE predicate on the "playtime_duration" field.
func PlaytimeDurationLTE(v int) predicate.Banner {
	return predicate.Banner(sql.FieldLTE(FieldPlaytimeDuration, v))
}

// FlasherDurationEQ applies the EQ predicate on the "flasher_duration" field.
func FlasherDurationEQ(v int) predicate.Banner {
	return predicate.Banner(sql.FieldEQ(FieldFlasherDuration, v))
}

// FlasherDurationNEQ applies the NEQ predicate on the "flasher_duration" field.
func FlasherDurationNEQ(v int) predicate.Banner {
	return predicate.Banner(sql.FieldNEQ(FieldFlasherDuration, v))
}

// FlasherDurationIn applies the In predicate on the "flasher_duration" field.
func FlasherDurationIn(vs ...int) predicate.Banner {
	return predicate.Banner(sql.FieldIn(FieldFlasherDuration, vs...))
}

// FlasherDurationNotIn applies the NotIn predicate on the "flasher_duration" field.
func FlasherDurationNotIn(vs ...int) predicate.Banner {
	return predicate.Banner(sql.FieldNotIn(FieldFlasherDuration, vs...))
}

// FlasherDurationGT applies the GT predicate on the "flasher_duration" field.
func FlasherDurationGT(v int) predicate.Banner {
	return predicate.Banner(sql.FieldGT(FieldFlasherDuration, v))
}

// FlasherDurationGTE applies the GTE predicate on the "flasher_duration" field.
func FlasherDurationGTE(v int) predicate.Banner {
	return predicate.Banner(sql.FieldGTE(FieldFlasherDuration, v))
}

// FlasherDurationLT applies the LT predicate on the "flasher_duration" field.
func FlasherDurationLT(v int) predicate.Banner {
	return predicate.Banner(sql.FieldLT(FieldFlasherDuration, v))
}

// FlasherDurationLTE applies the LTE predicate on the "flasher_duration" field.
func FlasherDurationLTE(v int) predicate.Banner {
	return predicate.Banner(sql.FieldLTE(FieldFlasherDuration, v))
}

// LightSignalEQ applies the EQ predicate on the "light_signal" field.
func LightSignalEQ(v string) predicate.Banner {
	return predicate.Banner(sql.FieldEQ(FieldLightSignal, v))
}

// LightSignalNEQ applies the NEQ predicate on the "light_signal" field.
func LightSignalNEQ(v string) predicate.Banner {
	return predicate.Banner(sql.FieldNEQ(FieldLightSignal, v))
}

// LightSignalIn applies the In predicate on the "light_signal" field.
func LightSignalIn(vs ...string) predicate.Banner {
	return predicate.Banner(sql.FieldIn(FieldLightSignal, vs...))
}

// LightSignalNotIn applies the NotIn predicate on the "light_signal" field.
func LightSignalNotIn(vs ...string) predicate.Banner {
	return predicate.Banner(sql.FieldNotIn(FieldLightSignal, vs...))
}

// LightSignalGT applies the GT predicate on the "light_signal" field.
func LightSignalGT(v string) predicate.Banner {
	return predicate.Banner(sql.FieldGT(FieldLightSignal, v))
}

// LightSignalGTE applies the GTE predicate on the "light_signal" field.
func LightSignalGTE(v string) predicate.Banner {
	return predicate.Banner(sql.FieldGTE(FieldLightSignal, v))
}

// LightSignalLT applies the LT predicate on the "light_signal" field.
func LightSignalLT(v string) predicate.Banner {
	return predicate.Banner(sql.FieldLT(FieldLightSignal, v))
}

// LightSignalLTE applies the LTE predicate on the "light_signal" field.
func LightSignalLTE(v string) predicate.Banner {
	return predicate.Banner(sql.FieldLTE(FieldLightSignal, v))
}

// LightSignalContains applies the Contains predicate on the "light_signal" field.
func LightSignalContains(v string) predicate.Banner {
	return predicate.Banner(sql.FieldContains(FieldLightSignal, v))
}

// LightSignalHasPrefix applies the HasPrefix predicate on the "light_signal" field.
func LightSignalHasPrefix(v string) predicate.Banner {
	return predicate.Banner(sql.FieldHasPrefix(FieldLightSignal, v))
}

// LightSignalHasSuffix applies the HasSuffix predicate on the "light_signal" field.
func LightSignalHasSuffix(v string) predicate.Banner {
	return predicate.Banner(sql.FieldHasSuffix(FieldLightSignal, v))
}

// LightSignalEqualFold applies the EqualFold predicate on the "light_signal" field.
func LightSignalEqualFold(v string) predicate.Banner {
	return predicate.Banner(sql.FieldEqualFold(FieldLightSignal, v))
}

// LightSignalContainsFold applies the ContainsFold predicate on the "light_signal" field.
func LightSignalContainsFold(v string) predicate.Banner {
	return predicate.Banner(sql.FieldContainsFold(FieldLightSignal, v))
}

// LightDurationEQ applies the EQ predicate on the "light_duration" field.
func LightDurationEQ(v int) predicate.Banner {
	return predicate.Banner(sql.FieldEQ(FieldLightDuration, v))
}

// LightDurationNEQ applies the NEQ predicate on the "light_duration" field.
func LightDurationNEQ(v int) predicate.Banner {
	return predicate.Banner(sql.FieldNEQ(FieldLightDuration, v))
}

// LightDurationIn applies the In predicate on the "light_duration" field.
func LightDurationIn(vs ...int) predicate.Banner {
	return predicate.Banner(sql.FieldIn(FieldLightDuration, vs...))
}

// LightDurationNotIn applies the NotIn predicate on the "light_duration" field.
func LightDurationNotIn(vs ...int) predicate.Banner {
	return predicate.Banner(sql.FieldNotIn(FieldLightDuration, vs...))
}

// LightDurationGT applies the GT predicate on the "light_duration" field.
func LightDurationGT(v int) predicate.Banner {
	return predicate.Banner(sql.FieldGT(FieldLightDuration, v))
}

// LightDurationGTE applies the GTE predicate on the "light_duration" field.
func LightDurationGTE(v int) predicate.Banner {
	return predicate.Banner(sql.FieldGTE(FieldLightDuration, v))
}

// LightDurationLT applies the LT predicate on the "light_duration" field.
func LightDurationLT(v int) predicate.Banner {
	return predicate.Banner(sql.FieldLT(FieldLightDuration, v))
}

// LightDurationLTE applies the LTE predicate on the "light_duration" field.
func LightDurationLTE(v int) predicate.Banner {
	return predicate.Banner(sql.FieldLTE(FieldLightDuration, v))
}

// AudioTtsGainEQ applies the EQ predicate on the "audio_tts_gain" field.
func AudioTtsGainEQ(v int) predicate.Banner {
	return predicate.Banner(sql.FieldEQ(FieldAudioTtsGain, v))
}

// AudioTtsGainNEQ applies the NEQ predicate on the "audio_tts_gain" field.
func AudioTtsGainNEQ(v int) predicate.Banner {
	return predicate.Banner(sql.FieldNEQ(FieldAudioTtsGain, v))
}

// AudioTtsGainIn applies the In predicate on the "audio_tts_gain" field.
func AudioTtsGainIn(vs ...int) predicate.Banner {
	return predicate.Banner(sql.FieldIn(FieldAudioTtsGain, vs...))
}

// AudioTtsGainNotIn applies the NotIn predicate on the "audio_tts_gain" field.
func AudioTtsGainNotIn(vs ...int) predicate.Banner {
	return predicate.Banner(sql.FieldNotIn(FieldAudioTtsGain, vs...))
}

// AudioTtsGainGT applies the GT predicate on the "audio_tts_gain" field.
func AudioTtsGainGT(v int) predicate.Banner {
	return predicate.Banner(sql.FieldGT(FieldAudioTtsGain, v))
}

// AudioTtsGainGTE applies the GTE predicate on the "audio_tts_gain" field.
func AudioTtsGainGTE(v int) predicate.Banner {
	return predicate.Banner(sql.FieldGTE(FieldAudioTtsGain, v))
}

// AudioTtsGainLT applies the LT predicate on the "audio_tts_gain" field.
func AudioTtsGainLT(v int) predicate.Banner {
	return predicate.Banner(sql.FieldLT(FieldAudioTtsGain, v))
}

// AudioTtsGainLTE applies the LTE predicate on the "audio_tts_gain" field.
func AudioTtsGainLTE(v int) predicate.Banner {
	return predicate.Banner(sql.FieldLTE(FieldAudioTtsGain, v))
}

// FlashNewMessageEQ applies the EQ predicate on the "flash_new_message" field.
func FlashNewMessageEQ(v string) predicate.Banner {
	return predicate.Banner(sql.FieldEQ(FieldFlashNewMessage, v))
}

// FlashNewMessageNEQ applies the NEQ predicate on the "flash_new_message" field.
func FlashNewMessageNEQ(v string) predicate.Banner {
	return predicate.Banner(sql.FieldNEQ(FieldFlashNewMessage, v))
}

// FlashNewMessageIn applies the In predicate on the "flash_new_message" field.
func FlashNewMessageIn(vs ...string) predicate.Banner {
	return predicate.Banner(sql.FieldIn(FieldFlashNewMessage, vs...))
}

// FlashNewMessageNotIn applies the NotIn predicate on the "flash_new_message" field.
func FlashNewMessageNotIn(vs ...string) predicate.Banner {
	return predicate.Banner(sql.FieldNotIn(FieldFlashNewMessage, vs...))
}

// FlashNewMessageGT applies the GT predicate on the "flash_new_message" field.
func FlashNewMessageGT(v string) predicate.Banner {
	return predicate.Banner(sql.FieldGT(FieldFlashNewMessage, v))
}

// FlashNewMessageGTE applies the GTE predicate on the "flash_new_message" field.
func FlashNewMessageGTE(v string) predicate.Banner {
	return predicate.Banner(sql.FieldGTE(FieldFlashNewMessage, v))
}

// FlashNewMessageLT applies the LT predicate on the "flash_new_message" field.
func FlashNewMessageLT(v string) predicate.Banner {
	return predicate.Banner(sql.FieldLT(FieldFlashNewMessage, v))
}

// FlashNewMessageLTE applies the LTE predicate on the "flash_new_message" field.
func FlashNewMessageLTE(v string) predicate.Banner {
	return predicate.Banner(sql.FieldLTE(FieldFlashNewMessage, v))
}

// FlashNewMessageContains applies the Contains predicate on the "flash_new_message" field.
func FlashNewMessageContains(v string) predicate.Banner {
	return predicate.Banner(sql.FieldContains(FieldFlashNewMessage, v))
}

// FlashNewMessageHasPrefix applies the HasPrefix predicate on the "flash_new_message" field.
func FlashNewMessageHasPrefix(v string) predicate.Banner {
	return predicate.Banner(sql.FieldHasPrefix(FieldFlashNewMessage, v))
}

// FlashNewMessageHasSuffix applies the HasSuffix predicate on the "flash_new_message" field.
func FlashNewMessageHasSuffix(v string) predicate.Banner {
	return predicate.Banner(sql.FieldHasSuffix(FieldFlashNewMessage, v))
}

// FlashNewMessageEqualFold applies the EqualFold predicate on the "flash_new_message" field.
func FlashNewMessageEqualFold(v string) predicate.Banner {
	return predicate.Banner(sql.FieldEqualFold(FieldFlashNewMessage, v))
}

// FlashNewMessageContainsFold applies the ContainsFold predicate on the "flash_new_message" field.
func FlashNewMessageContainsFold(v string) predicate.Banner {
	return predicate.Banner(sql.FieldContainsFold(FieldFlashNewMessage, v))
}

// VisibleTimeEQ applies the EQ predicate on the "visible_time" field.
func VisibleTimeEQ(v string) predicate.Banner {
	return predicate.Banner(sql.FieldEQ(FieldVisibleTime, v))
}

// VisibleTimeNEQ applies the NEQ predicate on the "visible_time" field.
func VisibleTimeNEQ(v string) predicate.Banner {
	return predicate.Banner(sql.FieldNEQ(FieldVisibleTime, v))
}

// VisibleTimeIn applies the In predicate on the "visible_time" field.
func VisibleTimeIn(vs ...string) predicate.Banner {
	return predicate.Banner(sql.FieldIn(FieldVisibleTime, vs...))
}

// VisibleTimeNotIn applies the NotIn predicate on the "visible_time" field.
func VisibleTimeNotIn(vs ...string) predicate.Banner {
	return predicate.Banner(sql.FieldNotIn(FieldVisibleTime, vs...))
}

// VisibleTimeGT applies the GT predicate on the "visible_time" field.
func VisibleTimeGT(v string) predicate.Banner {
	return predicate.Banner(sql.FieldGT(FieldVisibleTime, v))
}

// VisibleTimeGTE applies the GTE predicate on the "visible_time" field.
func VisibleTimeGTE(v string) predicate.Banner {
	return predicate.Banner(sql.FieldGTE(FieldVisibleTime, v))
}

// VisibleTimeLT applies the LT predicate on the "visible_time" field.
func VisibleTimeLT(v string) predicate.Banner {
	return predicate.Banner(sql.FieldLT(FieldVisibleTime, v))
}

// VisibleTimeLTE applies the LTE predicate on the "visible_time" field.
func VisibleTimeLTE(v string) predicate.Banner {
	return predicate.Banner(sql.FieldLTE(FieldVisibleTime, v))
}

// VisibleTimeContains applies the Contains predicate on the "visible_time" field.
func VisibleTimeContains(v string) predicate.Banner {
	return predicate.Banner(sql.FieldContains(FieldVisibleTime, v))
}

// VisibleTimeHasPrefix applies the HasPrefix predicate on the "visible_time" field.
func VisibleTimeHasPrefix(v string) predicate.Banner {
	return predicate.Banner(sql.FieldHasPrefix(FieldVisibleTime, v))
}

// VisibleTimeHasSuffix applies the HasSuffix predicate on the "visible_time" field.
func VisibleTimeHasSuffix(v string) predicate.Banner {
	return predicate.Banner(sql.FieldHasSuffix(FieldVisibleTime, v))
}

// VisibleTimeEqualFold applies the EqualFold predicate on the "visible_time" field.
func VisibleTimeEqualFold(v string) predicate.Banner {
	return predicate.Banner(sql.FieldEqualFold(FieldVisibleTime, v))
}

// VisibleTimeContainsFold applies the ContainsFold predicate on the "visible_time" field.
func VisibleTimeContainsFold(v string) predicate.Banner {
	return predicate.Banner(sql.FieldContainsFold(FieldVisibleTime, v))
}

// VisibleFrequencyEQ applies the EQ predicate on the "visible_frequency" field.
func VisibleFrequencyEQ(v string) predicate.Banner {
	return predicate.Banner(sql.FieldEQ(FieldVisibleFrequency, v))
}

// VisibleFrequencyNEQ applies the NEQ predicate on the "visible_frequency" field.
func VisibleFrequencyNEQ(v string) predicate.Banner {
	return predicate.Banner(sql.FieldNEQ(FieldVisibleFrequency, v))
}

// VisibleFrequencyIn applies the In predicate on the "visible_frequency" field.
func VisibleFrequencyIn(vs ...string) predicate.Banner {
	return predicate.Banner(sql.FieldIn(FieldVisibleFrequency, vs...))
}

// VisibleFrequencyNotIn applies the NotIn predicate on the "visible_frequency" field.
func VisibleFrequencyNotIn(vs ...string) predicate.Banner {
	return predicate.Banner(sql.FieldNotIn(FieldVisibleFrequency, vs...))
}

// VisibleFrequencyGT applies the GT predicate on the "visible_frequency" field.
func VisibleFrequencyGT(v string) predicate.Banner {
	return predicate.Banner(sql.FieldGT(FieldVisibleFrequency, v))
}

// VisibleFrequencyGTE applies the GTE predicate on the "visible_frequency" field.
func VisibleFrequencyGTE(v string) predicate.Banner {
	return predicate.Banner(sql.FieldGTE(FieldVisibleFrequency, v))
}

// VisibleFrequencyLT applies the LT predicate on the "visible_frequency" field.
func VisibleFrequencyLT(v string) predicate.Banner {
	return predicate.Banner(sql.FieldLT(FieldVisibleFrequency, v))
}

// VisibleFrequencyLTE applies the LTE predicate on the "visible_frequency" field.
func VisibleFrequencyLTE(v string) predicate.Banner {
	return predicate.Banner(sql.FieldLTE(FieldVisibleFrequency, v))
}

// VisibleFrequencyContains applies the Contains predicate on the "visible_frequency" field.
func VisibleFrequencyContains(v string) predicate.Banner {
	return predicate.Banner(sql.FieldContains(FieldVisibleFrequency, v))
}

// VisibleFrequencyHasPrefix applies the HasPrefix predicate on the "visible_frequency" field.
func VisibleFrequencyHasPrefix(v string) predicate.Banner {
	return predicate.Banner(sql.FieldHasPrefix(FieldVisibleFrequency, v))
}

// VisibleFrequencyHasSuffix applies the HasSuffix predicate on the "visible_frequency" field.
func VisibleFrequencyHasSuffix(v string) predicate.Banner {
	return predicate.Banner(sql.FieldHasSuffix(FieldVisibleFrequency, v))
}

// VisibleFrequencyEqualFold applies the EqualFold predicate on the "visible_frequency" field.
func VisibleFrequencyEqualFold(v string) predicate.Banner {
	return predicate.Banner(sql.FieldEqualFold(FieldVisibleFrequency, v))
}

// VisibleFrequencyContainsFold applies the ContainsFold predicate on the "visible_frequency" field.
func VisibleFrequencyContainsFold(v string) predicate.Banner {
	return predicate.Banner(sql.FieldContainsFold(FieldVisibleFrequency, v))
}

// VisibleDurationEQ applies the EQ predicate on the "visible_duration" field.
func VisibleDurationEQ(v string) predicate.Banner {
	return predicate.Banner(sql.FieldEQ(FieldVisibleDuration, v))
}

// VisibleDurationNEQ applies the NEQ predicate on the "visible_duration" field.
func VisibleDurationNEQ(v string) predicate.Banner {
	return predicate.Banner(sql.FieldNEQ(FieldVisibleDuration, v))
}

// VisibleDurationIn applies the In predicate on the "visible_duration" field.
func VisibleDurationIn(vs ...string) predicate.Banner {
	return predicate.Banner(sql.FieldIn(FieldVisibleDuration, vs...))
}

// VisibleDurationNotIn applies the NotIn predicate on the "visible_duration" field.
func VisibleDurationNotIn(vs ...string) predicate.Banner {
	return predicate.Banner(sql.FieldNotIn(FieldVisibleDuration, vs...))
}

// VisibleDurationGT applies the GT predicate on the "visible_duration" field.
func VisibleDurationGT(v string) predicate.Banner {
	return predicate.Banner(sql.FieldGT(FieldVisibleDuration, v))
}

// VisibleDurationGTE applies the GTE predicate on the "visible_duration" field.
func VisibleDurationGTE(v string) predicate.Banner {
	return predicate.Banner(sql.FieldGTE(FieldVisibleDuration, v))
}

// VisibleDurationLT applies the LT predicate on the "visible_duration" field.
func VisibleDurationLT(v string) predicate.Banner {
	return predicate.Banner(sql.FieldLT(FieldVisibleDuration, v))
}

// VisibleDurationLTE applies the LTE predicate on the "visible_duration" field.
func VisibleDurationLTE(v string) predicate.Banner {
	return predicate.Banner(sql.FieldLTE(FieldVisibleDuration, v))
}

// VisibleDurationContains applies the Contains predicate on the "visible_duration" field.
func VisibleDurationContains(v string) predicate.Banner {
	return predicate.Banner(sql.FieldContains(FieldVisibleDuration, v))
}

// VisibleDurationHasPrefix applies the HasPrefix predicate on the "visible_duration" field.
func VisibleDurationHasPrefix(v string) predicate.Banner {
	return predicate.Banner(sql.FieldHasPrefix(FieldVisibleDuration, v))
}

// VisibleDurationHasSuffix applies the HasSuffix predicate on the "visible_duration" field.
func VisibleDurationHasSuffix(v string) predicate.Banner {
	return predicate.Banner(sql.FieldHasSuffix(FieldVisibleDuration, v))
}

// VisibleDurationEqualFold applies the EqualFold predicate on the "visible_duration" field.
func VisibleDurationEqualFold(v string) predicate.Banner {
	return predicate.Banner(sql.FieldEqualFold(FieldVisibleDuration, v))
}

// VisibleDurationContainsFold applies the ContainsFold predicate on the "visible_duration" field.
func VisibleDurationContainsFold(v string) predicate.Banner {
	return predicate.Banner(sql.FieldContainsFold(FieldVisibleDuration, v))
}

// RecordVoiceAtLaunchSelectionEQ applies the EQ predicate on the "record_voice_at_launch_selection" field.
func RecordVoiceAtLaunchSelectionEQ(v int) predicate.Banner {
	return predicate.Banner(sql.FieldEQ(FieldRecordVoiceAtLaunchSelection, v))
}

// RecordVoiceAtLaunchSelectionNEQ applies the NEQ predicate on the "record_voice_at_launch_selection" field.
func RecordVoiceAtLaunchSelectionNEQ(v int) predicate.Banner {
	return predicate.Banner(sql.FieldNEQ(FieldRecordVoiceAtLaunchSelection, v))
}

// RecordVoiceAtLaunchSelectionIn applies the In predicate on the "record_voice_at_launch_selection" field.
func RecordVoiceAtLaunchSelectionIn(vs ...int) predicate.Banner {
	return predicate.Banner(sql.FieldIn(FieldRecordVoiceAtLaunchSelection, vs...))
}

// RecordVoiceAtLaunchSelectionNotIn applies the NotIn predicate on the "record_voice_at_launch_selection" field.
func RecordVoiceAtLaunchSelectionNotIn(vs ...int) predicate.Banner {
	return predicate.Banner(sql.FieldNotIn(FieldRecordVoiceAtLaunchSelection, vs...))
}

// RecordVoiceAtLaunchSelectionGT applies the GT predicate on the "record_voice_at_launch_selection" field.
func RecordVoiceAtLaunchSelectionGT(v int) predicate.Banner {
	return predicate.Banner(sql.FieldGT(FieldRecordVoiceAtLaunchSelection, v))
}

// RecordVoiceAtLaunchSelectionGTE applies the GTE predicate on the "record_voice_at_launch_selection" field.
func RecordVoiceAtLaunchSelectionGTE(v int) predicate.Banner {
	return predicate.Banner(sql.FieldGTE(FieldRecordVoiceAtLaunchSelection, v))
}

// RecordVoiceAtLaunchSelectionLT applies the LT predicate on the "record_voice_at_launch_selection" field.
func RecordVoiceAtLaunchSelectionLT(v int) predicate.Banner {
	return predicate.Banner(sql.FieldLT(FieldRecordVoiceAtLaunchSelection, v))
}

// RecordVoiceAtLaunchSelectionLTE applies the LTE predicate on the "record_voice_at_launch_selection" field.
func RecordVoiceAtLaunchSelectionLTE(v int) predicate.Banner {
	return predicate.Banner(sql.FieldLTE(FieldRecordVoiceAtLaunchSelection, v))
}

// RecordVoiceAtLaunchEQ applies the EQ predicate on the "record_voice_at_launch" field.
func RecordVoiceAtLaunchEQ(v string) predicate.Banner {
	return predicate.Banner(sql.FieldEQ(FieldRecordVoiceAtLaunch, v))
}

// RecordVoiceAtLaunchNEQ applies the NEQ predicate on the "record_voice_at_launch" field.
func RecordVoiceAtLaunchNEQ(v string) predicate.Banner {
	return predicate.Banner(sql.FieldNEQ(FieldRecordVoiceAtLaunch, v))
}

// RecordVoiceAtLaunchIn applies the In predicate on the "record_voice_at_launch" field.
func RecordVoiceAtLaunchIn(vs ...string) predicate.Banner {
	return predicate.Banner(sql.FieldIn(FieldRecordVoiceAtLaunch, vs...))
}

// RecordVoiceAtLaunchNotIn applies the NotIn predicate on the "record_voice_at_launch" field.
func RecordVoiceAtLaunchNotIn(vs ...string) predicate.Banner {
	return predicate.Banner(sql.FieldNotIn(FieldRecordVoiceAtLaunch, vs...))
}

// RecordVoiceAtLaunchGT applies the GT predicate on the "record_voice_at_launch" field.
func RecordVoiceAtLaunchGT(v string) predicate.Banner {
	return predicate.Banner(sql.FieldGT(FieldRecordVoiceAtLaunch, v))
}

// RecordVoiceAtLaunchGTE applies the GTE predicate on the "record_voice_at_launch" field.
func RecordVoiceAtLaunchGTE(v string) predicate.Banner {
	return predicate.Banner(sql.FieldGTE(FieldRecordVoiceAtLaunch, v))
}

// RecordVoiceAtLaunchLT applies the LT predicate on the "record_voice_at_launch" field.
func RecordVoiceAtLaunchLT(v string) predicate.Banner {
	return predicate.Banner(sql.FieldLT(FieldRecordVoiceAtLaunch, v))
}

// RecordVoiceAtLaunchLTE applies the LTE predicate on the "record_voice_at_launch" field.
func RecordVoiceAtLaunchLTE(v string) predicate.Banner {
	return predicate.Banner(sql.FieldLTE(FieldRecordVoiceAtLaunch, v))
}

// RecordVoiceAtLaunchContains applies the Contains predicate on the "record_voice_at_launch" field.
func RecordVoiceAtLaunchContains(v string) predicate.Banner {
	return predicate.Banner(sql.FieldContains(FieldRecordVoiceAtLaunch, v))
}

// RecordVoiceAtLaunchHasPrefix applies the HasPrefix predicate on the "record_voice_at_launch" field.
func RecordVoiceAtLaunchHasPrefix(v string) predicate.Banner {
	return predicate.Banner(sql.FieldHasPrefix(FieldRecordVoiceAtLaunch, v))
}

// RecordVoiceAtLaunchHasSuffix applies the HasSuffix predicate on the "record_voice_at_launch" field.
func RecordVoiceAtLaunchHasSuffix(v string) predicate.Banner {
	return predicate.Banner(sql.FieldHasSuffix(FieldRecordVoiceAtLaunch, v))
}

// RecordVoiceAtLaunchEqualFold applies the EqualFold predicate on the "record_voice_at_launch" field.
func RecordVoiceAtLaunchEqualFold(v string) predicate.Banner {
	return predicate.Banner(sql.FieldEqualFold(FieldRecordVoiceAtLaunch, v))
}

// RecordVoiceAtLaunchContainsFold applies the ContainsFold predicate on the "record_voice_at_launch" field.
func RecordVoiceAtLaunchContainsFold(v string) predicate.Banner {
	return predicate.Banner(sql.FieldContainsFold(FieldRecordVoiceAtLaunch, v))
}

// AudioRecordedGainEQ applies the EQ predicate on the "audio_recorded_gain" field.
func AudioRecordedGainEQ(v int) predicate.Banner {
	return predicate.Banner(sql.FieldEQ(FieldAudioRecordedGain, v))
}

// AudioRecordedGainNEQ applies the NEQ predicate on the "audio_recorded_gain" field.
func AudioRecordedGainNEQ(v int) predicate.Banner {
	return predicate.Banner(sql.FieldNEQ(FieldAudioRecordedGain, v))
}

// AudioRecordedGainIn applies the In predicate on the "audio_recorded_gain" field.
func AudioRecordedGainIn(vs ...int) predicate.Banner {
	return predicate.Banner(sql.FieldIn(FieldAudioRecordedGain, vs...))
}

// AudioRecordedGainNotIn applies the NotIn predicate on the "audio_recorded_gain" field.
func AudioRecordedGainNotIn(vs ...int) predicate.Banner {
	return predicate.Banner(sql.FieldNotIn(FieldAudioRecordedGain, vs...))
}

// AudioRecordedGainGT applies the GT predicate on the "audio_recorded_gain" field.
func AudioRecordedGainGT(v int) predicate.Banner {
	return predicate.Banner(sql.FieldGT(FieldAudioRecordedGain, v))
}

// AudioRecordedGainGTE applies the GTE predicate on the "audio_recorded_gain" field.
func AudioRecordedGainGTE(v int) predicate.Banner {
	return predicate.Banner(sql.FieldGTE(FieldAudioRecordedGain, v))
}

// AudioRecordedGainLT applies the LT predicate on the "audio_recorded_gain" field.
func AudioRecordedGainLT(v int) predicate.Banner {
	return predicate.Banner(sql.FieldLT(FieldAudioRecordedGain, v))
}

// AudioRecordedGainLTE applies the LTE predicate on the "audio_recorded_gain" field.
func AudioRecordedGainLTE(v int) predicate.Banner {
	return predicate.Banner(sql.FieldLTE(FieldAudioRecordedGain, v))
}

// PaDeliveryModeEQ applies the EQ predicate on the "pa_delivery_mode" field.
func PaDeliveryModeEQ(v string) predicate.Banner {
	return predicate.Banner(sql.FieldEQ(FieldPaDeliveryMode, v))
}

// PaDeliveryModeNEQ applies the NEQ predicate on the "pa_delivery_mode" field.
func PaDeliveryModeNEQ(v string) predicate.Banner {
	return predicate.Banner(sql.FieldNEQ(FieldPaDeliveryMode, v))
}

// PaDeliveryModeIn applies the In predicate on the "pa_delivery_mode" field.
func PaDeliveryModeIn(vs ...string) predicate.Banner {
	return predicate.Banner(sql.FieldIn(FieldPaDeliveryMode, vs...))
}

// PaDeliveryModeNotIn applies the NotIn predicate on the "pa_delivery_mode" field.
func PaDeliveryModeNotIn(vs ...string) predicate.Banner {
	return predicate.Banner(sql.FieldNotIn(FieldPaDeliveryMode, vs...))
}

// PaDeliveryModeGT applies the GT predicate on the "pa_delivery_mode" field.
func PaDeliveryModeGT(v string) predicate.Banner {
	return predicate.Banner(sql.FieldGT(FieldPaDeliveryMode, v))
}

// PaDeliveryModeGTE applies the GTE predicate on the "pa_delivery_mode" field.
func PaDeliveryModeGTE(v string) predicate.Banner {
	return predicate.Banner(sql.FieldGTE(FieldPaDeliveryMode, v))
}

// PaDeliveryModeLT applies the LT predicate on the "pa_delivery_mode" field.
func PaDeliveryModeLT(v string) predicate.Banner {
	return predicate.Banner(sql.FieldLT(FieldPaDeliveryMode, v))
}

// PaDeliveryModeLTE applies the LTE predicate on the "pa_delivery_mode" field.
func PaDeliveryModeLTE(v string) predicate.Banner {
	return predicate.Banner(sql.FieldLTE(FieldPaDeliveryMode, v))
}

// PaDeliveryModeContains applies the Contains predicate on the "pa_delivery_mode" field.
func PaDeliveryModeContains(v string) predicate.Banner {
	return predicate.Banner(sql.FieldContains(FieldPaDeliveryMode, v))
}

// PaDeliveryModeHasPrefix applies the HasPrefix predicate on the "pa_delivery_mode" field.
func PaDeliveryModeHasPrefix(v string) predicate.Banner {
	return predicate.Banner(sql.FieldHasPrefix(FieldPaDeliveryMode, v))
}

// PaDeliveryModeHasSuffix applies the HasSuffix predicate on the "pa_delivery_mode" field.
func PaDeliveryModeHasSuffix(v string) predicate.Banner {
	return predicate.Banner(sql.FieldHasSuffix(FieldPaDeliveryMode, v))
}

// PaDeliveryModeEqualFold applies the EqualFold predicate on the "pa_delivery_mode" field.
func PaDeliveryModeEqualFold(v string) predicate.Banner {
	return predicate.Banner(sql.FieldEqualFold(FieldPaDeliveryMode, v))
}

// PaDeliveryModeContainsFold applies the ContainsFold predicate on the "pa_delivery_mode" field.
func PaDeliveryModeContainsFold(v string) predicate.Banner {
	return predicate.Banner(sql.FieldContainsFold(FieldPaDeliveryMode, v))
}

// AudioRepeatEQ applies the EQ predicate on the "audio_repeat" field.
func AudioRepeatEQ(v string) predicate.Banner {
	return predicate.Banner(sql.FieldEQ(FieldAudioRepeat, v))
}

// AudioRepeatNEQ applies the NEQ predicate on the "audio_repeat" field.
func AudioRepeatNEQ(v string) predicate.Banner {
	return predicate.Banner(sql.FieldNEQ(FieldAudioRepeat, v))
}

// AudioRepeatIn applies the In predicate on the "audio_repeat" field.
func AudioRepeatIn(vs ...string) predicate.Banner {
	return predicate.Banner(sql.FieldIn(FieldAudioRepeat, vs...))
}

// AudioRepeatNotIn applies the NotIn predicate on the "audio_repeat" field.
func AudioRepeatNotIn(vs ...string) predicate.Banner {
	return predicate.Banner(sql.FieldNotIn(FieldAudioRepeat, vs...))
}

// AudioRepeatGT applies the GT predicate on the "audio_repeat" field.
func AudioRepeatGT(v string) predicate.Banner {
	return predicate.Banner(sql.FieldGT(FieldAudioRepeat, v))
}

// AudioRepeatGTE applies the GTE predicate on the "audio_repeat" field.
func AudioRepeatGTE(v string) predicate.Banner {
	return predicate.Banner(sql.FieldGTE(FieldAudioRepeat, v))
}

// AudioRepeatLT applies the LT predicate on the "audio_repeat" field.
func AudioRepeatLT(v string) predicate.Banner {
	return predicate.Banner(sql.FieldLT(FieldAudioRepeat, v))
}

// AudioRepeatLTE applies the LTE predicate on the "audio_repeat" field.
func AudioRepeatLTE(v string) predicate.Banner {
	return predicate.Banner(sql.FieldLTE(FieldAudioRepeat, v))
}

// AudioRepeatContains applies the Contains predicate on the "audio_repeat" field.
func AudioRepeatContains(v string) predicate.Banner {
	return predicate.Banner(sql.FieldContains(FieldAudioRepeat, v))
}

// AudioRepeatHasPrefix applies the HasPrefix predicate on the "audio_repeat" field.
func AudioRepeatHasPrefix(v string) predicate.Banner {
	return predicate.Banner(sql.FieldHasPrefix(FieldAudioRepeat, v))
}

// AudioRepeatHasSuffix applies the HasSuffix predicate on the "audio_repeat" field.
func AudioRepeatHasSuffix(v string) predicate.Banner {
	return predicate.Banner(sql.FieldHasSuffix(FieldAudioRepeat, v))
}

// AudioRepeatEqualFold applies the EqualFold predicate on the "audio_repeat" field.
func AudioRepeatEqualFold(v string) predicate.Banner {
	return predicate.Banner(sql.FieldEqualFold(FieldAudioRepeat, v))
}

// AudioRepeatContainsFold applies the ContainsFold predicate on the "audio_repeat" field.
func AudioRepeatContainsFold(v string) predicate.Banner {
	return predicate.Banner(sql.FieldContainsFold(FieldAudioRepeat, v))
}

// SpeedEQ applies the EQ predicate on the "speed" field.
func SpeedEQ(v int) predicate.Banner {
	return predicate.Banner(sql.FieldEQ(FieldSpeed, v))
}

// SpeedNEQ applies the NEQ predicate on the "speed" field.
func SpeedNEQ(v int) predicate.Banner {
	return predicate.Banner(sql.FieldNEQ(FieldSpeed, v))
}

// SpeedIn applies the In predicate on the "speed" field.
func SpeedIn(vs ...int) predicate.Banner {
	return predicate.Banner(sql.FieldIn(FieldSpeed, vs...))
}

// SpeedNotIn applies the NotIn predicate on the "speed" field.
func SpeedNotIn(vs ...int) predicate.Banner {
	return predicate.Banner(sql.FieldNotIn(FieldSpeed, vs...))
}

// SpeedGT applies the GT predicate on the "speed" field.
func SpeedGT(v int) predicate.Banner {
	return predicate.Banner(sql.FieldGT(FieldSpeed, v))
}

// SpeedGTE applies the GTE predicate on the "speed" field.
func SpeedGTE(v int) predicate.Banner {
	return predicate.Banner(sql.FieldGTE(FieldSpeed, v))
}

// SpeedLT applies the LT predicate on the "speed" field.
func SpeedLT(v int) predicate.Banner {
	return predicate.Banner(sql.FieldLT(FieldSpeed, v))
}

// SpeedLTE applies the LTE predicate on the "speed" field.
func SpeedLTE(v int) predicate.Banner {
	return predicate.Banner(sql.FieldLTE(FieldSpeed, v))
}

// PriorityEQ applies the EQ predicate on the "priority" field.
func PriorityEQ(v int) predicate.Banner {
	return predicate.Banner(sql.FieldEQ(FieldPriority, v))
}

// PriorityNEQ applies the NEQ predicate on the "priority" field.
func PriorityNEQ(v int) predicate.Banner {
	return predicate.Banner(sql.FieldNEQ(FieldPriority, v))
}

// PriorityIn applies the In predicate on the "priority" field.
func PriorityIn(vs ...int) predicate.Banner {
	return predicate.Banner(sql.FieldIn(FieldPriority, vs...))
}

// PriorityNotIn applies the NotIn predicate on the "priority" field.
func PriorityNotIn(vs ...int) predicate.Banner {
	return predicate.Banner(sql.FieldNotIn(FieldPriority, vs...))
}

// PriorityGT applies the GT predicate on the "priority" field.
func PriorityGT(v int) predicate.Banner {
	return predicate.Banner(sql.FieldGT(FieldPriority, v))
}

// PriorityGTE applies the GTE predicate on the "priority" field.
func PriorityGTE(v int) predicate.Banner {
	return predicate.Banner(sql.FieldGTE(FieldPriority, v))
}

// PriorityLT applies the LT predicate on the "priority" field.
func PriorityLT(v int) predicate.Banner {
	return predicate.Banner(sql.FieldLT(FieldPriority, v))
}

// PriorityLTE applies the LTE predicate on the "priority" field.
func PriorityLTE(v int) predicate.Banner {
	return predicate.Banner(sql.FieldLTE(FieldPriority, v))
}

// ExpirePriorityEQ applies the EQ predicate on the "expire_priority" field.
func ExpirePriorityEQ(v int) predicate.Banner {
	return predicate.Banner(sql.FieldEQ(FieldExpirePriority, v))
}

// ExpirePriorityNEQ applies the NEQ predicate on the "expire_priority" field.
func ExpirePriorityNEQ(v int) predicate.Banner {
	return predicate.Banner(sql.FieldNEQ(FieldExpirePriority, v))
}

// ExpirePriorityIn applies the In predicate on the "expire_priority" field.
func ExpirePriorityIn(vs ...int) predicate.Banner {
	return predicate.Banner(sql.FieldIn(FieldExpirePriority, vs...))
}

// ExpirePriorityNotIn applies the NotIn predicate on the "expire_priority" field.
func ExpirePriorityNotIn(vs ...int) predicate.Banner {
	return predicate.Banner(sql.FieldNotIn(FieldExpirePriority, vs...))
}

// ExpirePriorityGT applies the GT predicate on the "expire_priority" field.
func ExpirePriorityGT(v int) predicate.Banner {
	return predicate.Banner(sql.FieldGT(FieldExpirePriority, v))
}

// ExpirePriorityGTE applies the GTE predicate on the "expire_priority" field.
func ExpirePriorityGTE(v int) predicate.Banner {
	return predicate.Banner(sql.FieldGTE(FieldExpirePriority, v))
}

// ExpirePriorityLT applies the LT predicate on the "expire_priority" field.
func ExpirePriorityLT(v int) predicate.Banner {
	return predicate.Banner(sql.FieldLT(FieldExpirePriority, v))
}

// ExpirePriorityLTE applies the LTE predicate on the "expire_priority" field.
func ExpirePriorityLTE(v int) predicate.Banner {
	return predicate.Banner(sql.FieldLTE(FieldExpirePriority, v))
}

// PriorityDurationEQ applies the EQ predicate on the "priority_duration" field.
func PriorityDurationEQ(v int) predicate.Banner {
	return predicate.Banner(sql.FieldEQ(FieldPriorityDuration, v))
}

// PriorityDurationNEQ applies the NEQ predicate on the "priority_duration" field.
func PriorityDurationNEQ(v int) predicate.Banner {
	return predicate.Banner(sql.FieldNEQ(FieldPriorityDuration, v))
}

// PriorityDurationIn applies the In predicate on the "priority_duration" field.
func PriorityDurationIn(vs ...int) predicate.Banner {
	return predicate.Banner(sql.FieldIn(FieldPriorityDuration, vs...))
}

// PriorityDurationNotIn applies the NotIn predicate on the "priority_duration" field.
func PriorityDurationNotIn(vs ...int) predicate.Banner {
	return predicate.Banner(sql.FieldNotIn(FieldPriorityDuration, vs...))
}

// PriorityDurationGT applies the GT predicate on the "priority_duration" field.
func PriorityDurationGT(v int) predicate.Banner {
	return predicate.Banner(sql.FieldGT(FieldPriorityDuration, v))
}

// PriorityDurationGTE applies the GTE predicate on the "priority_duration" field.
func PriorityDurationGTE(v int) predicate.Banner {
	return predicate.Banner(sql.FieldGTE(FieldPriorityDuration, v))
}

// PriorityDurationLT applies the LT predicate on the "priority_duration" field.
func PriorityDurationLT(v int) predicate.Banner {
	return predicate.Banner(sql.FieldLT(FieldPriorityDuration, v))
}

// PriorityDurationLTE applies the LTE predicate on the "priority_duration" field.
func PriorityDurationLTE(v int) predicate.Banner {
	return predicate.Banner(sql.FieldLTE(FieldPriorityDuration, v))
}

// PagePriorityAtLaunchEQ applies the EQ predicate on the "page_priority_at_launch" field.
func PagePriorityAtLaunchEQ(v int) predicate.Banner {
	return predicate.Banner(sql.FieldEQ(FieldPagePriorityAtLaunch, v))
}

// PagePriorityAtLaunchNEQ applies the NEQ predicate on the "page_priority_at_launch" field.
func PagePriorityAtLaunchNEQ(v int) predicate.Banner {
	return predicate.Banner(sql.FieldNEQ(FieldPagePriorityAtLaunch, v))
}

// PagePriorityAtLaunchIn applies the In predicate on the "page_priority_at_launch" field.
func PagePriorityAtLaunchIn(vs ...int) predicate.Banner {
	return predicate.Banner(sql.FieldIn(FieldPagePriorityAtLaunch, vs...))
}

// PagePriorityAtLaunchNotIn applies the NotIn predicate on the "page_priority_at_launch" field.
func PagePriorityAtLaunchNotIn(vs ...int) predicate.Banner {
	return predicate.Banner(sql.FieldNotIn(FieldPagePriorityAtLaunch, vs...))
}

// PagePriorityAtLaunchGT applies the GT predicate on the "page_priority_at_launch" field.
func PagePriorityAtLaunchGT(v int) predicate.Banner {
	return predicate.Banner(sql.FieldGT(FieldPagePriorityAtLaunch, v))
}

// PagePriorityAtLaunchGTE applies the GTE predicate on the "page_priority_at_launch" field.
func PagePriorityAtLaunchGTE(v int) predicate.Banner {
	return predicate.Banner(sql.FieldGTE(FieldPagePriorityAtLaunch, v))
}

// PagePriorityAtLaunchLT applies the LT predicate on the "page_priority_at_launch" field.
func PagePriorityAtLaunchLT(v int) predicate.Banner {
	return predicate.Banner(sql.FieldLT(FieldPagePriorityAtLaunch, v))
}

// PagePriorityAtLaunchLTE applies the LTE predicate on the "page_priority_at_launch" field.
func PagePriorityAtLaunchLTE(v int) predicate.Banner {
	return predicate.Banner(sql.FieldLTE(FieldPagePriorityAtLaunch, v))
}

// MultimediaTypeEQ applies the EQ predicate on the "multimedia_type" field.
func MultimediaTypeEQ(v string) predicate.Banner {
	return predicate.Banner(sql.FieldEQ(FieldMultimediaType, v))
}

// MultimediaTypeNEQ applies the NEQ predicate on the "multimedia_type" field.
func MultimediaTypeNEQ(v string) predicate.Banner {
	return predicate.Banner(sql.FieldNEQ(FieldMultimediaType, v))
}

// MultimediaTypeIn applies the In predicate on the "multimedia_type" field.
func MultimediaTypeIn(vs ...string) predicate.Banner {
	return predicate.Banner(sql.FieldIn(FieldMultimediaType, vs...))
}

// MultimediaTypeNotIn applies the NotIn predicate on the "multimedia_type" field.
func MultimediaTypeNotIn(vs ...string) predicate.Banner {
	return predicate.Banner(sql.FieldNotIn(FieldMultimediaType, vs...))
}

// MultimediaTypeGT applies the GT predicate on the "multimedia_type" field.
func MultimediaTypeGT(v string) predicate.Banner {
	return predicate.Banner(sql.FieldGT(FieldMultimediaType, v))
}

// MultimediaTypeGTE applies the GTE predicate on the "multimedia_type" field.
func MultimediaTypeGTE(v string) predicate.Banner {
	return predicate.Banner(sql.FieldGTE(FieldMultimediaType, v))
}

// MultimediaTypeLT applies the LT predicate on the "multimedia_type" field.
func MultimediaTypeLT(v string) predicate.Banner {
	return predicate.Banner(sql.FieldLT(FieldMultimediaType, v))
}

// MultimediaTypeLTE applies the LTE predicate on the "multimedia_type" field.
func MultimediaTypeLTE(v string) predicate.Banner {
	return predicate.Banner(sql.FieldLTE(FieldMultimediaType, v))
}

// MultimediaTypeContains applies the Contains predicate on the "multimedia_type" field.
func MultimediaTypeContains(v string) predicate.Banner {
	return predicate.Banner(sql.FieldContains(FieldMultimediaType, v))
}

// MultimediaTypeHasPrefix applies the HasPrefix predicate on the "multimedia_type" field.
func MultimediaTypeHasPrefix(v string) predicate.Banner {
	return predicate.Banner(sql.FieldHasPrefix(FieldMultimediaType, v))
}

// MultimediaTypeHasSuffix applies the HasSuffix predicate on the "multimedia_type" field.
func MultimediaTypeHasSuffix(v string) predicate.Banner {
	return predicate.Banner(sql.FieldHasSuffix(FieldMultimediaType, v))
}

// MultimediaTypeEqualFold applies the EqualFold predicate on the "multimedia_type" field.
func MultimediaTypeEqualFold(v string) predicate.Banner {
	return predicate.Banner(sql.FieldEqualFold(FieldMultimediaType, v))
}

// MultimediaTypeContainsFold applies the ContainsFold predicate on the "multimedia_type" field.
func MultimediaTypeContainsFold(v string) predicate.Banner {
	return predicate.Banner(sql.FieldContainsFold(FieldMultimediaType, v))
}

// MultimediaAudioGainEQ applies the EQ predicate on the "multimedia_audio_gain" field.
func MultimediaAudioGainEQ(v int) predicate.Banner {
	return predicate.Banner(sql.FieldEQ(FieldMultimediaAudioGain, v))
}

// MultimediaAudioGainNEQ applies the NEQ predicate on the "multimedia_audio_gain" field.
func MultimediaAudioGainNEQ(v int) predicate.Banner {
	return predicate.Banner(sql.FieldNEQ(FieldMultimediaAudioGain, v))
}

// MultimediaAudioGainIn applies the In predicate on the "multimedia_audio_gain" field.
func MultimediaAudioGainIn(vs ...int) predicate.Banner {
	return predicate.Banner(sql.FieldIn(FieldMultimediaAudioGain, vs...))
}

// MultimediaAudioGainNotIn applies the NotIn predicate on the "multimedia_audio_gain" field.
func MultimediaAudioGainNotIn(vs ...int) predicate.Banner {
	return predicate.Banner(sql.FieldNotIn(FieldMultimediaAudioGain, vs...))
}

// MultimediaAudioGainGT applies the GT predicate on the "multimedia_audio_gain" field.
func MultimediaAudioGainGT(v int) predicate.Banner {
	return predicate.Banner(sql.FieldGT(FieldMultimediaAudioGain, v))
}

// MultimediaAudioGainGTE applies the GTE predicate on the "multimedia_audio_gain" field.
func MultimediaAudioGainGTE(v int) predicate.Banner {
	return predicate.Banner(sql.FieldGTE(FieldMultimediaAudioGain, v))
}

// MultimediaAudioGainLT applies the LT predicate on the "multimedia_audio_gain" field.
func MultimediaAudioGainLT(v int) predicate.Banner {
	return predicate.Banner(sql.FieldLT(FieldMultimediaAudioGain, v))
}

// MultimediaAudioGainLTE applies the LTE predicate on the "multimedia_audio_gain" field.
func MultimediaAudioGainLTE(v int) predicate.Banner {
	return predicate.Banner(sql.FieldLTE(FieldMultimediaAudioGain, v))
}

// WebpageURLEQ applies the EQ predicate on the "webpage_url" field.
func WebpageURLEQ(v string) predicate.Banner {
	return predicate.Banner(sql.FieldEQ(FieldWebpageURL, v))
}

// WebpageURLNEQ applies the NEQ predicate on the "webpage_url" field.
func WebpageURLNEQ(v string) predicate.Banner {
	return predicate.Banner(sql.FieldNEQ(FieldWebpageURL, v))
}

// WebpageURLIn applies the In predicate on the "webpage_url" field.
func WebpageURLIn(vs ...string) predicate.Banner {
	return predicate.Banner(sql.FieldIn(FieldWebpageURL, vs...))
}

// WebpageURLNotIn applies the NotIn predicate on the "webpage_url" field.
func WebpageURLNotIn(vs ...string) predicate.Banner {
	return predicate.Banner(sql.FieldNotIn(FieldWebpageURL, vs...))
}

// WebpageURLGT applies the GT predicate on the "webpage_url" field.
func WebpageURLGT(v string) predicate.Banner {
	return predicate.Banner(sql.FieldGT(FieldWebpageURL, v))
}

// WebpageURLGTE applies the GTE predicate on the "webpage_url" field.
func WebpageURLGTE(v string) predicate.Banner {
	return predicate.Banner(sql.FieldGTE(FieldWebpageURL, v))
}

// WebpageURLLT applies the LT predicate on the "webpage_url" field.
func WebpageURLLT(v string) predicate.Banner {
	return predicate.Banner(sql.FieldLT(FieldWebpageURL, v))
}

// WebpageURLLTE applies the LTE predicate on the "webpage_url" field.
func WebpageURLLTE(v string) predicate.Banner {
	return predicate.Banner(sql.FieldLTE(FieldWebpageURL, v))
}

// WebpageURLContains applies the Contains predicate on the "webpage_url" field.
func WebpageURLContains(v string) predicate.Banner {
	return predicate.Banner(sql.FieldContains(FieldWebpageURL, v))
}

// WebpageURLHasPrefix applies the HasPrefix predicate on the "webpage_url" field.
func WebpageURLHasPrefix(v string) predicate.Banner {
	return predicate.Banner(sql.FieldHasPrefix(FieldWebpageURL, v))
}

// WebpageURLHasSuffix applies the HasSuffix predicate on the "webpage_url" field.
func WebpageURLHasSuffix(v string) predicate.Banner {
	return predicate.Banner(sql.FieldHasSuffix(FieldWebpageURL, v))
}

// WebpageURLEqualFold applies the EqualFold predicate on the "webpage_url" field.
func WebpageURLEqualFold(v string) predicate.Banner {
	return predicate.Banner(sql.FieldEqualFold(FieldWebpageURL, v))
}

// WebpageURLContainsFold applies the ContainsFold predicate on the "webpage_url" field.
func WebpageURLContainsFold(v string) predicate.Banner {
	return predicate.Banner(sql.FieldContainsFold(FieldWebpageURL, v))
}

// VideoFileEQ applies the EQ predicate on the "video_file" field.
func VideoFileEQ(v string) predicate.Banner {
	return predicate.Banner(sql.FieldEQ(FieldVideoFile, v))
}

// VideoFileNEQ applies the NEQ predicate on the "video_file" field.
func VideoFileNEQ(v string) predicate.Banner {
	return predicate.Banner(sql.FieldNEQ(FieldVideoFile, v))
}

// VideoFileIn applies the In predicate on the "video_file" field.
func VideoFileIn(vs ...string) predicate.Banner {
	return predicate.Banner(sql.FieldIn(FieldVideoFile, vs...))
}

// VideoFileNotIn applies the NotIn predicate on the "video_file" field.
func VideoFileNotIn(vs ...string) predicate.Banner {
	return predicate.Banner(sql.FieldNotIn(FieldVideoFile, vs...))
}

// VideoFileGT applies the GT predicate on the "video_file" field.
func VideoFileGT(v string) predicate.Banner {
	return predicate.Banner(sql.FieldGT(FieldVideoFile, v))
}

// VideoFileGTE applies the GTE predicate on the "video_file" field.
func VideoFileGTE(v string) predicate.Banner {
	return predicate.Banner(sql.FieldGTE(FieldVideoFile, v))
}

// VideoFileLT applies the LT predicate on the "video_file" field.
func VideoFileLT(v string) predicate.Banner {
	return predicate.Banner(sql.FieldLT(FieldVideoFile, v))
}

// VideoFileLTE applies the LTE predicate on the "video_file" field.
func VideoFileLTE(v string) predicate.Banner {
	return predicate.Banner(sql.FieldLTE(FieldVideoFile, v))
}

// VideoFileContains applies the Contains predicate on the "video_file" field.
func VideoFileContains(v string) predicate.Banner {
	return predicate.Banner(sql.FieldContains(FieldVideoFile, v))
}

// VideoFileHasPrefix applies the HasPrefix predicate on the "video_file" field.
func VideoFileHasPrefix(v string) predicate.Banner {
	return predicate.Banner(sql.FieldHasPrefix(FieldVideoFile, v))
}

// VideoFileHasSuffix applies the HasSuffix predicate on the "video_file" field.
func VideoFileHasSuffix(v string) predicate.Banner {
	return predicate.Banner(sql.FieldHasSuffix(FieldVideoFile, v))
}

// VideoFileEqualFold applies the EqualFold predicate on the "video_file" field.
func VideoFileEqualFold(v string) predicate.Banner {
	return predicate.Banner(sql.FieldEqualFold(FieldVideoFile, v))
}

// VideoFileContainsFold applies the ContainsFold predicate on the "video_file" field.
func VideoFileContainsFold(v string) predicate.Banner {
	return predicate.Banner(sql.FieldContainsFold(FieldVideoFile, v))
}

// ShowCameraEQ applies the EQ predicate on the "show_camera" field.
func ShowCameraEQ(v string) predicate.Banner {
	return predicate.Banner(sql.FieldEQ(FieldShowCamera, v))
}

// ShowCameraNEQ applies the NEQ predicate on the "show_camera" field.
func ShowCameraNEQ(v string) predicate.Banner {
	return predicate.Banner(sql.FieldNEQ(FieldShowCamera, v))
}

// ShowCameraIn applies the In predicate on the "show_camera" field.
func ShowCameraIn(vs ...string) predicate.Banner {
	return predicate.Banner(sql.FieldIn(FieldShowCamera, vs...))
}

// ShowCameraNotIn applies the NotIn predicate on the "show_camera" field.
func ShowCameraNotIn(vs ...string) predicate.Banner {
	return predicate.Banner(sql.FieldNotIn(FieldShowCamera, vs...))
}

// ShowCameraGT applies the GT predicate on the "show_camera" field.
func ShowCameraGT(v string) predicate.Banner {
	return predicate.Banner(sql.FieldGT(FieldShowCamera, v))
}

// ShowCameraGTE applies the GTE predicate on the "show_camera" field.
func ShowCameraGTE(v string) predicate.Banner {
	return predicate.Banner(sql.FieldGTE(FieldShowCamera, v))
}

// ShowCameraLT applies the LT predicate on the "show_camera" field.
func ShowCameraLT(v string) predicate.Banner {
	return predicate.Banner(sql.FieldLT(FieldShowCamera, v))
}

// ShowCameraLTE applies the LTE predicate on the "show_camera" field.
func ShowCameraLTE(v string) predicate.Banner {
	return predicate.Banner(sql.FieldLTE(FieldShowCamera, v))
}

// ShowCameraContains applies the Contains predicate on the "show_camera" field.
func ShowCameraContains(v string) predicate.Banner {
	return predicate.Banner(sql.FieldContains(FieldShowCamera, v))
}

// ShowCameraHasPrefix applies the HasPrefix predicate on the "show_camera" field.
func ShowCameraHasPrefix(v string) predicate.Banner {
	return predicate.Banner(sql.FieldHasPrefix(FieldShowCamera, v))
}

// ShowCameraHasSuffix applies the HasSuffix predicate on the "show_camera" field.
func ShowCameraHasSuffix(v string) predicate.Banner {
	return predicate.Banner(sql.FieldHasSuffix(FieldShowCamera, v))
}

// ShowCameraEqualFold applies the EqualFold predicate on the "show_camera" field.
func ShowCameraEqualFold(v string) predicate.Banner {
	return predicate.Banner(sql.FieldEqualFold(FieldShowCamera, v))
}

// ShowCameraContainsFold applies the ContainsFold predicate on the "show_camera" field.
func ShowCameraContainsFold(v string) predicate.Banner {
	return predicate.Banner(sql.FieldContainsFold(FieldShowCamera, v))
}

// CameraDeviceIDEQ applies the EQ predicate on the "camera_device_id" field.
func CameraDeviceIDEQ(v string) predicate.Banner {
	return predicate.Banner(sql.FieldEQ(FieldCameraDeviceID, v))
}

// CameraDeviceIDNEQ applies the NEQ predicate on the "camera_device_id" field.
func CameraDeviceIDNEQ(v string) predicate.Banner {
	return predicate.Banner(sql.FieldNEQ(FieldCameraDeviceID, v))
}

// CameraDeviceIDIn applies the In predicate on the "camera_device_id" field.
func CameraDeviceIDIn(vs ...string) predicate.Banner {
	return predicate.Banner(sql.FieldIn(FieldCameraDeviceID, vs...))
}

// CameraDeviceIDNotIn applies the NotIn predicate on the "camera_device_id" field.
func CameraDeviceIDNotIn(vs ...string) predicate.Banner {
	return predicate.Banner(sql.FieldNotIn(FieldCameraDeviceID, vs...))
}

// CameraDeviceIDGT applies the GT predicate on the "camera_device_id" field.
func CameraDeviceIDGT(v string) predicate.Banner {
	return predicate.Banner(sql.FieldGT(FieldCameraDeviceID, v))
}

// CameraDeviceIDGTE applies the GTE predicate on the "camera_device_id" field.
func CameraDeviceIDGTE(v string) predicate.Banner {
	return predicate.Banner(sql.FieldGTE(FieldCameraDeviceID, v))
}

// CameraDeviceIDLT applies the LT predicate on the "camera_device_id" field.
func CameraDeviceIDLT(v string) predicate.Banner {
	return predicate.Banner(sql.FieldLT(FieldCameraDeviceID, v))
}

// CameraDeviceIDLTE applies the LTE predicate on the "camera_device_id" field.
func CameraDeviceIDLTE(v string) predicate.Banner {
	return predicate.Banner(sql.FieldLTE(FieldCameraDeviceID, v))
}

// CameraDeviceIDContains applies the Contains predicate on the "camera_device_id" field.
func CameraDeviceIDContains(v string) predicate.Banner {
	return predicate.Banner(sql.FieldContains(FieldCameraDeviceID, v))
}

// CameraDeviceIDHasPrefix applies the HasPrefix predicate on the "camera_device_id" field.
func CameraDeviceIDHasPrefix(v string) predicate.Banner {
	return predicate.Banner(sql.FieldHasPrefix(FieldCameraDeviceID, v))
}

// CameraDeviceIDHasSuffix applies the HasSuffix predicate on the "camera_device_id" field.
func CameraDeviceIDHasSuffix(v string) predicate.Banner {
	return predicate.Banner(sql.FieldHasSuffix(FieldCameraDeviceID, v))
}

// CameraDeviceIDEqualFold applies the EqualFold predicate on the "camera_device_id" field.
func CameraDeviceIDEqualFold(v string) predicate.Banner {
	return predicate.Banner(sql.FieldEqualFold(FieldCameraDeviceID, v))
}

// CameraDeviceIDContainsFold applies the ContainsFold predicate on the "camera_device_id" field.
func CameraDeviceIDContainsFold(v string) predicate.Banner {
	return predicate.Banner(sql.FieldContainsFold(FieldCameraDeviceID, v))
}

// LaunchPinEQ applies the EQ predicate on the "launch_pin" field.
func LaunchPinEQ(v string) predicate.Banner {
	return predicate.Banner(sql.FieldEQ(FieldLaunchPin, v))
}

// LaunchPinNEQ applies the NEQ predicate on the "launch_pin" field.
func LaunchPinNEQ(v string) predicate.Banner {
	return predicate.Banner(sql.FieldNEQ(FieldLaunchPin, v))
}

// LaunchPinIn applies the In predicate on the "launch_pin" field.
func LaunchPinIn(vs ...string) predicate.Banner {
	return predicate.Banner(sql.FieldIn(FieldLaunchPin, vs...))
}

// LaunchPinNotIn applies the NotIn predicate on the "launch_pin" field.
func LaunchPinNotIn(vs ...string) predicate.Banner {
	return predicate.Banner(sql.FieldNotIn(FieldLaunchPin, vs...))
}

// LaunchPinGT applies the GT predicate on the "launch_pin" field.
func LaunchPinGT(v string) predicate.Banner {
	return predicate.Banner(sql.FieldGT(FieldLaunchPin, v))
}

// LaunchPinGTE applies the GTE predicate on the "launch_pin" field.
func LaunchPinGTE(v string) predicate.Banner {
	return predicate.Banner(sql.FieldGTE(FieldLaunchPin, v))
}

// LaunchPinLT applies the LT predicate on the "launch_pin" field.
func LaunchPinLT(v string) predicate.Banner {
	return predicate.Banner(sql.FieldLT(FieldLaunchPin, v))
}

// LaunchPinLTE applies the LTE predicate on the "launch_pin" field.
func LaunchPinLTE(v string) predicate.Banner {
	return predicate.Banner(sql.FieldLTE(FieldLaunchPin, v))
}

// LaunchPinContains applies the Contains predicate on the "launch_pin" field.
func LaunchPinContains(v string) predicate.Banner {
	return predicate.Banner(sql.FieldContains(FieldLaunchPin, v))
}

// LaunchPinHasPrefix applies the HasPrefix predicate on the "launch_pin" field.
func LaunchPinHasPrefix(v string) predicate.Banner {
	return predicate.Banner(sql.FieldHasPrefix(FieldLaunchPin, v))
}

// LaunchPinHasSuffix applies the HasSuffix predicate on the "launch_pin" field.
func LaunchPinHasSuffix(v string) predicate.Banner {
	return predicate.Banner(sql.FieldHasSuffix(FieldLaunchPin, v))
}

// LaunchPinEqualFold applies the EqualFold predicate on the "launch_pin" field.
func LaunchPinEqualFold(v string) predicate.Banner {
	return predicate.Banner(sql.FieldEqualFold(FieldLaunchPin, v))
}

// LaunchPinContainsFold applies the ContainsFold predicate on the "launch_pin" field.
func LaunchPinContainsFold(v string) predicate.Banner {
	return predicate.Banner(sql.FieldContainsFold(FieldLaunchPin, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Banner) predicate.Banner {
	return predicate.Banner(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Banner) predicate.Banner {
	return predicate.Banner(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Banner) predicate.Banner {
	return predicate.Banner(sql.NotPredicates(p))
}
