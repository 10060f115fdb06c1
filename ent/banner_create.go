// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/messagenet/bannerd/ent/banner"
)

// BannerCreate is the builder for creating a Banner entity.
type BannerCreate struct {
	config
	mutation *BannerMutation
	hooks    []Hook
}

// SetTemplateRecno sets the "template_recno" field.
func (_c *BannerCreate) SetTemplateRecno(v int) *BannerCreate {
	_c.mutation.SetTemplateRecno(v)
	return _c
}

// SetNillableTemplateRecno sets the "template_recno" field if the given value is not nil.
func (_c *BannerCreate) SetNillableTemplateRecno(v *int) *BannerCreate {
	if v != nil {
		_c.SetTemplateRecno(*v)
	}
	return _c
}

// SetRecDtsec sets the "rec_dtsec" field.
func (_c *BannerCreate) SetRecDtsec(v string) *BannerCreate {
	_c.mutation.SetRecDtsec(v)
	return _c
}

// SetNillableRecDtsec sets the "rec_dtsec" field if the given value is not nil.
func (_c *BannerCreate) SetNillableRecDtsec(v *string) *BannerCreate {
	if v != nil {
		_c.SetRecDtsec(*v)
	}
	return _c
}

// SetDuration sets the "duration" field.
func (_c *BannerCreate) SetDuration(v int) *BannerCreate {
	_c.mutation.SetDuration(v)
	return _c
}

// SetNillableDuration sets the "duration" field if the given value is not nil.
func (_c *BannerCreate) SetNillableDuration(v *int) *BannerCreate {
	if v != nil {
		_c.SetDuration(*v)
	}
	return _c
}

// SetMsgtype sets the "msgtype" field.
func (_c *BannerCreate) SetMsgtype(v string) *BannerCreate {
	_c.mutation.SetMsgtype(v)
	return _c
}

// SetNillableMsgtype sets the "msgtype" field if the given value is not nil.
func (_c *BannerCreate) SetNillableMsgtype(v *string) *BannerCreate {
	if v != nil {
		_c.SetMsgtype(*v)
	}
	return _c
}

// SetText1 sets the "text1" field.
func (_c *BannerCreate) SetText1(v string) *BannerCreate {
	_c.mutation.SetText1(v)
	return _c
}

// SetNillableText1 sets the "text1" field if the given value is not nil.
func (_c *BannerCreate) SetNillableText1(v *string) *BannerCreate {
	if v != nil {
		_c.SetText1(*v)
	}
	return _c
}

// SetText2 sets the "text2" field.
func (_c *BannerCreate) SetText2(v string) *BannerCreate {
	_c.mutation.SetText2(v)
	return _c
}

// SetNillableText2 sets the "text2" field if the given value is not nil.
func (_c *BannerCreate) SetNillableText2(v *string) *BannerCreate {
	if v != nil {
		_c.SetText2(*v)
	}
	return _c
}

// SetText3 sets the "text3" field.
func (_c *BannerCreate) SetText3(v string) *BannerCreate {
	_c.mutation.SetText3(v)
	return _c
}

// SetNillableText3 sets the "text3" field if the given value is not nil.
func (_c *BannerCreate) SetNillableText3(v *string) *BannerCreate {
	if v != nil {
		_c.SetText3(*v)
	}
	return _c
}

// SetText4 sets the "text4" field.
func (_c *BannerCreate) SetText4(v string) *BannerCreate {
	_c.mutation.SetText4(v)
	return _c
}

// SetNillableText4 sets the "text4" field if the given value is not nil.
func (_c *BannerCreate) SetNillableText4(v *string) *BannerCreate {
	if v != nil {
		_c.SetText4(*v)
	}
	return _c
}

// SetText5 sets the "text5" field.
func (_c *BannerCreate) SetText5(v string) *BannerCreate {
	_c.mutation.SetText5(v)
	return _c
}

// SetNillableText5 sets the "text5" field if the given value is not nil.
func (_c *BannerCreate) SetNillableText5(v *string) *BannerCreate {
	if v != nil {
		_c.SetText5(*v)
	}
	return _c
}

// SetDetails sets the "details" field.
func (_c *BannerCreate) SetDetails(v string) *BannerCreate {
	_c.mutation.SetDetails(v)
	return _c
}

// SetNillableDetails sets the "details" field if the given value is not nil.
func (_c *BannerCreate) SetNillableDetails(v *string) *BannerCreate {
	if v != nil {
		_c.SetDetails(*v)
	}
	return _c
}

// SetAudioGroup sets the "audio_group" field.
func (_c *BannerCreate) SetAudioGroup(v string) *BannerCreate {
	_c.mutation.SetAudioGroup(v)
	return _c
}

// SetNillableAudioGroup sets the "audio_group" field if the given value is not nil.
func (_c *BannerCreate) SetNillableAudioGroup(v *string) *BannerCreate {
	if v != nil {
		_c.SetAudioGroup(*v)
	}
	return _c
}

// SetPlaytimeDuration sets the "playtime_duration" field.
func (_c *BannerCreate) SetPlaytimeDuration(v int) *BannerCreate {
	_c.mutation.SetPlaytimeDuration(v)
	return _c
}

// SetNillablePlaytimeDuration sets the "playtime_duration" field if the given value is not nil.
func (_c *BannerCreate) SetNillablePlaytimeDuration(v *int) *BannerCreate {
	if v != nil {
		_c.SetPlaytimeDuration(*v)
	}
	return _c
}

// SetFlasherDuration sets the "flasher_duration" field.
func (_c *BannerCreate) SetFlasherDuration(v int) *BannerCreate {
	_c.mutation.SetFlasherDuration(v)
	return _c
}

// SetNillableFlasherDuration sets the "flasher_duration" field if the given value is not nil.
func (_c *BannerCreate) SetNillableFlasherDuration(v *int) *BannerCreate {
	if v != nil {
		_c.SetFlasherDuration(*v)
	}
	return _c
}

// SetLightSignal sets the "light_signal" field.
func (_c *BannerCreate) SetLightSignal(v string) *BannerCreate {
	_c.mutation.SetLightSignal(v)
	return _c
}

// SetNillableLightSignal sets the "light_signal" field if the given value is not nil.
func (_c *BannerCreate) SetNillableLightSignal(v *string) *BannerCreate {
	if v != nil {
		_c.SetLightSignal(*v)
	}
	return _c
}

// SetLightDuration sets the "light_duration" field.
func (_c *BannerCreate) SetLightDuration(v int) *BannerCreate {
	_c.mutation.SetLightDuration(v)
	return _c
}

// SetNillableLightDuration sets the "light_duration" field if the given value is not nil.
func (_c *BannerCreate) SetNillableLightDuration(v *int) *BannerCreate {
	if v != nil {
		_c.SetLightDuration(*v)
	}
	return _c
}

// SetAudioTtsGain sets the "audio_tts_gain" field.
func (_c *BannerCreate) SetAudioTtsGain(v int) *BannerCreate {
	_c.mutation.SetAudioTtsGain(v)
	return _c
}

// SetNillableAudioTtsGain sets the "audio_tts_gain" field if the given value is not nil.
func (_c *BannerCreate) SetNillableAudioTtsGain(v *int) *BannerCreate {
	if v != nil {
		_c.SetAudioTtsGain(*v)
	}
	return _c
}

// SetFlashNewMessage sets the "flash_new_message" field.
func (_c *BannerCreate) SetFlashNewMessage(v string) *BannerCreate {
	_c.mutation.SetFlashNewMessage(v)
	return _c
}

// SetNillableFlashNewMessage sets the "flash_new_message" field if the given value is not nil.
func (_c *BannerCreate) SetNillableFlashNewMessage(v *string) *BannerCreate {
	if v != nil {
		_c.SetFlashNewMessage(*v)
	}
	return _c
}

// SetVisibleTime sets the "visible_time" field.
func (_c *BannerCreate) SetVisibleTime(v string) *BannerCreate {
	_c.mutation.SetVisibleTime(v)
	return _c
}

// SetNillableVisibleTime sets the "visible_time" field if the given value is not nil.
func (_c *BannerCreate) SetNillableVisibleTime(v *string) *BannerCreate {
	if v != nil {
		_c.SetVisibleTime(*v)
	}
	return _c
}

// SetVisibleFrequency sets the "visible_frequency" field.
func (_c *BannerCreate) SetVisibleFrequency(v string) *BannerCreate {
	_c.mutation.SetVisibleFrequency(v)
	return _c
}

// SetNillableVisibleFrequency sets the "visible_frequency" field if the given value is not nil.
func (_c *BannerCreate) SetNillableVisibleFrequency(v *string) *BannerCreate {
	if v != nil {
		_c.SetVisibleFrequency(*v)
	}
	return _c
}

// SetVisibleDuration sets the "visible_duration" field.
func (_c *BannerCreate) SetVisibleDuration(v string) *BannerCreate {
	_c.mutation.SetVisibleDuration(v)
	return _c
}

// SetNillableVisibleDuration sets the "visible_duration" field if the given value is not nil.
func (_c *BannerCreate) SetNillableVisibleDuration(v *string) *BannerCreate {
	if v != nil {
		_c.SetVisibleDuration(*v)
	}
	return _c
}

// SetRecordVoiceAtLaunchSelection sets the "record_voice_at_launch_selection" field.
func (_c *BannerCreate) SetRecordVoiceAtLaunchSelection(v int) *BannerCreate {
	_c.mutation.SetRecordVoiceAtLaunchSelection(v)
	return _c
}

// SetNillableRecordVoiceAtLaunchSelection sets the "record_voice_at_launch_selection" field if the given value is not nil.
func (_c *BannerCreate) SetNillableRecordVoiceAtLaunchSelection(v *int) *BannerCreate {
	if v != nil {
		_c.SetRecordVoiceAtLaunchSelection(*v)
	}
	return _c
}

// SetRecordVoiceAtLaunch sets the "record_voice_at_launch" field.
func (_c *BannerCreate) SetRecordVoiceAtLaunch(v string) *BannerCreate {
	_c.mutation.SetRecordVoiceAtLaunch(v)
	return _c
}

// SetNillableRecordVoiceAtLaunch sets the "record_voice_at_launch" field if the given value is not nil.
func (_c *BannerCreate) SetNillableRecordVoiceAtLaunch(v *string) *BannerCreate {
	if v != nil {
		_c.SetRecordVoiceAtLaunch(*v)
	}
	return _c
}

// SetAudioRecordedGain sets the "audio_recorded_gain" field.
func (_c *BannerCreate) SetAudioRecordedGain(v int) *BannerCreate {
	_c.mutation.SetAudioRecordedGain(v)
	return _c
}

// SetNillableAudioRecordedGain sets the "audio_recorded_gain" field if the given value is not nil.
func (_c *BannerCreate) SetNillableAudioRecordedGain(v *int) *BannerCreate {
	if v != nil {
		_c.SetAudioRecordedGain(*v)
	}
	return _c
}

// SetPaDeliveryMode sets the "pa_delivery_mode" field.
func (_c *BannerCreate) SetPaDeliveryMode(v string) *BannerCreate {
	_c.mutation.SetPaDeliveryMode(v)
	return _c
}

// SetNillablePaDeliveryMode sets the "pa_delivery_mode" field if the given value is not nil.
func (_c *BannerCreate) SetNillablePaDeliveryMode(v *string) *BannerCreate {
	if v != nil {
		_c.SetPaDeliveryMode(*v)
	}
	return _c
}

// SetAudioRepeat sets the "audio_repeat" field.
func (_c *BannerCreate) SetAudioRepeat(v string) *BannerCreate {
	_c.mutation.SetAudioRepeat(v)
	return _c
}

// SetNillableAudioRepeat sets the "audio_repeat" field if the given value is not nil.
func (_c *BannerCreate) SetNillableAudioRepeat(v *string) *BannerCreate {
	if v != nil {
		_c.SetAudioRepeat(*v)
	}
	return _c
}

// SetSpeed sets the "speed" field.
func (_c *BannerCreate) SetSpeed(v int) *BannerCreate {
	_c.mutation.SetSpeed(v)
	return _c
}

// SetNillableSpeed sets the "speed" field if the given value is not nil.
func (_c *BannerCreate) SetNillableSpeed(v *int) *BannerCreate {
	if v != nil {
		_c.SetSpeed(*v)
	}
	return _c
}

// SetPriority sets the "priority" field.
func (_c *BannerCreate) SetPriority(v int) *BannerCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_c *BannerCreate) SetNillablePriority(v *int) *BannerCreate {
	if v != nil {
		_c.SetPriority(*v)
	}
	return _c
}

// SetExpirePriority sets the "expire_priority" field.
func (_c *BannerCreate) SetExpirePriority(v int) *BannerCreate {
	_c.mutation.SetExpirePriority(v)
	return _c
}

// SetNillableExpirePriority sets the "expire_priority" field if the given value is not nil.
func (_c *BannerCreate) SetNillableExpirePriority(v *int) *BannerCreate {
	if v != nil {
		_c.SetExpirePriority(*v)
	}
	return _c
}

// SetPriorityDuration sets the "priority_duration" field.
func (_c *BannerCreate) SetPriorityDuration(v int) *BannerCreate {
	_c.mutation.SetPriorityDuration(v)
	return _c
}

// SetNillablePriorityDuration sets the "priority_duration" field if the given value is not nil.
func (_c *BannerCreate) SetNillablePriorityDuration(v *int) *BannerCreate {
	if v != nil {
		_c.SetPriorityDuration(*v)
	}
	return _c
}

// SetPagePriorityAtLaunch sets the "page_priority_at_launch" field.
func (_c *BannerCreate) SetPagePriorityAtLaunch(v int) *BannerCreate {
	_c.mutation.SetPagePriorityAtLaunch(v)
	return _c
}

// SetNillablePagePriorityAtLaunch sets the "page_priority_at_launch" field if the given value is not nil.
func (_c *BannerCreate) SetNillablePagePriorityAtLaunch(v *int) *BannerCreate {
	if v != nil {
		_c.SetPagePriorityAtLaunch(*v)
	}
	return _c
}

// SetMultimediaType sets the "multimedia_type" field.
func (_c *BannerCreate) SetMultimediaType(v string) *BannerCreate {
	_c.mutation.SetMultimediaType(v)
	return _c
}

// SetNillableMultimediaType sets the "multimedia_type" field if the given value is not nil.
func (_c *BannerCreate) SetNillableMultimediaType(v *string) *BannerCreate {
	if v != nil {
		_c.SetMultimediaType(*v)
	}
	return _c
}

// SetMultimediaAudioGain sets the "multimedia_audio_gain" field.
func (_c *BannerCreate) SetMultimediaAudioGain(v int) *BannerCreate {
	_c.mutation.SetMultimediaAudioGain(v)
	return _c
}

// SetNillableMultimediaAudioGain sets the "multimedia_audio_gain" field if the given value is not nil.
func (_c *BannerCreate) SetNillableMultimediaAudioGain(v *int) *BannerCreate {
	if v != nil {
		_c.SetMultimediaAudioGain(*v)
	}
	return _c
}

// SetWebpageURL sets the "webpage_url" field.
func (_c *BannerCreate) SetWebpageURL(v string) *BannerCreate {
	_c.mutation.SetWebpageURL(v)
	return _c
}

// SetNillableWebpageURL sets the "webpage_url" field if the given value is not nil.
func (_c *BannerCreate) SetNillableWebpageURL(v *string) *BannerCreate {
	if v != nil {
		_c.SetWebpageURL(*v)
	}
	return _c
}

// SetVideoFile sets the "video_file" field.
func (_c *BannerCreate) SetVideoFile(v string) *BannerCreate {
	_c.mutation.SetVideoFile(v)
	return _c
}

// SetNillableVideoFile sets the "video_file" field if the given value is not nil.
func (_c *BannerCreate) SetNillableVideoFile(v *string) *BannerCreate {
	if v != nil {
		_c.SetVideoFile(*v)
	}
	return _c
}

// SetShowCamera sets the "show_camera" field.
func (_c *BannerCreate) SetShowCamera(v string) *BannerCreate {
	_c.mutation.SetShowCamera(v)
	return _c
}

// SetNillableShowCamera sets the "show_camera" field if the given value is not nil.
func (_c *BannerCreate) SetNillableShowCamera(v *string) *BannerCreate {
	if v != nil {
		_c.SetShowCamera(*v)
	}
	return _c
}

// SetCameraDeviceID sets the "camera_device_id" field.
func (_c *BannerCreate) SetCameraDeviceID(v string) *BannerCreate {
	_c.mutation.SetCameraDeviceID(v)
	return _c
}

// SetNillableCameraDeviceID sets the "camera_device_id" field if the given value is not nil.
func (_c *BannerCreate) SetNillableCameraDeviceID(v *string) *BannerCreate {
	if v != nil {
		_c.SetCameraDeviceID(*v)
	}
	return _c
}

// SetLaunchPin sets the "launch_pin" field.
func (_c *BannerCreate) SetLaunchPin(v string) *BannerCreate {
	_c.mutation.SetLaunchPin(v)
	return _c
}

// SetNillableLaunchPin sets the "launch_pin" field if the given value is not nil.
func (_c *BannerCreate) SetNillableLaunchPin(v *string) *BannerCreate {
	if v != nil {
		_c.SetLaunchPin(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *BannerCreate) SetID(v int) *BannerCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the BannerMutation object of the builder.
func (_c *BannerCreate) Mutation() *BannerMutation {
	return _c.mutation
}

// Save creates the Banner in the database.
func (_c *BannerCreate) Save(ctx context.Context) (*Banner, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BannerCreate) SaveX(ctx context.Context) *Banner {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BannerCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BannerCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BannerCreate) defaults() {
	if _, ok := _c.mutation.TemplateRecno(); !ok {
		v := banner.DefaultTemplateRecno
		_c.mutation.SetTemplateRecno(v)
	}
	if _, ok := _c.mutation.RecDtsec(); !ok {
		v := banner.DefaultRecDtsec
		_c.mutation.SetRecDtsec(v)
	}
	if _, ok := _c.mutation.Duration(); !ok {
		v := banner.DefaultDuration
		_c.mutation.SetDuration(v)
	}
	if _, ok := _c.mutation.Msgtype(); !ok {
		v := banner.DefaultMsgtype
		_c.mutation.SetMsgtype(v)
	}
	if _, ok := _c.mutation.Text1(); !ok {
		v := banner.DefaultText1
		_c.mutation.SetText1(v)
	}
	if _, ok := _c.mutation.Text2(); !ok {
		v := banner.DefaultText2
		_c.mutation.SetText2(v)
	}
	if _, ok := _c.mutation.Text3(); !ok {
		v := banner.DefaultText3
		_c.mutation.SetText3(v)
	}
	if _, ok := _c.mutation.Text4(); !ok {
		v := banner.DefaultText4
		_c.mutation.SetText4(v)
	}
	if _, ok := _c.mutation.Text5(); !ok {
		v := banner.DefaultText5
		_c.mutation.SetText5(v)
	}
	if _, ok := _c.mutation.Details(); !ok {
		v := banner.DefaultDetails
		_c.mutation.SetDetails(v)
	}
	if _, ok := _c.mutation.AudioGroup(); !ok {
		v := banner.DefaultAudioGroup
		_c.mutation.SetAudioGroup(v)
	}
	if _, ok := _c.mutation.PlaytimeDuration(); !ok {
		v := banner.DefaultPlaytimeDuration
		_c.mutation.SetPlaytimeDuration(v)
	}
	if _, ok := _c.mutation.FlasherDuration(); !ok {
		v := banner.DefaultFlasherDuration
		_c.mutation.SetFlasherDuration(v)
	}
	if _, ok := _c.mutation.LightSignal(); !ok {
		v := banner.DefaultLightSignal
		_c.mutation.SetLightSignal(v)
	}
	if _, ok := _c.mutation.LightDuration(); !ok {
		v := banner.DefaultLightDuration
		_c.mutation.SetLightDuration(v)
	}
	if _, ok := _c.mutation.AudioTtsGain(); !ok {
		v := banner.DefaultAudioTtsGain
		_c.mutation.SetAudioTtsGain(v)
	}
	if _, ok := _c.mutation.FlashNewMessage(); !ok {
		v := banner.DefaultFlashNewMessage
		_c.mutation.SetFlashNewMessage(v)
	}
	if _, ok := _c.mutation.VisibleTime(); !ok {
		v := banner.DefaultVisibleTime
		_c.mutation.SetVisibleTime(v)
	}
	if _, ok := _c.mutation.VisibleFrequency(); !ok {
		v := banner.DefaultVisibleFrequency
		_c.mutation.SetVisibleFrequency(v)
	}
	if _, ok := _c.mutation.VisibleDuration(); !ok {
		v := banner.DefaultVisibleDuration
		_c.mutation.SetVisibleDuration(v)
	}
	if _, ok := _c.mutation.RecordVoiceAtLaunchSelection(); !ok {
		v := banner.DefaultRecordVoiceAtLaunchSelection
		_c.mutation.SetRecordVoiceAtLaunchSelection(v)
	}
	if _, ok := _c.mutation.RecordVoiceAtLaunch(); !ok {
		v := banner.DefaultRecordVoiceAtLaunch
		_c.mutation.SetRecordVoiceAtLaunch(v)
	}
	if _, ok := _c.mutation.AudioRecordedGain(); !ok {
		v := banner.DefaultAudioRecordedGain
		_c.mutation.SetAudioRecordedGain(v)
	}
	if _, ok := _c.mutation.PaDeliveryMode(); !ok {
		v := banner.DefaultPaDeliveryMode
		_c.mutation.SetPaDeliveryMode(v)
	}
	if _, ok := _c.mutation.AudioRepeat(); !ok {
		v := banner.DefaultAudioRepeat
		_c.mutation.SetAudioRepeat(v)
	}
	if _, ok := _c.mutation.Speed(); !ok {
		v := banner.DefaultSpeed
		_c.mutation.SetSpeed(v)
	}
	if _, ok := _c.mutation.Priority(); !ok {
		v := banner.DefaultPriority
		_c.mutation.SetPriority(v)
	}
	if _, ok := _c.mutation.ExpirePriority(); !ok {
		v := banner.DefaultExpirePriority
		_c.mutation.SetExpirePriority(v)
	}
	if _, ok := _c.mutation.PriorityDuration(); !ok {
		v := banner.DefaultPriorityDuration
		_c.mutation.SetPriorityDuration(v)
	}
	if _, ok := _c.mutation.PagePriorityAtLaunch(); !ok {
		v := banner.DefaultPagePriorityAtLaunch
		_c.mutation.SetPagePriorityAtLaunch(v)
	}
	if _, ok := _c.mutation.MultimediaType(); !ok {
		v := banner.DefaultMultimediaType
		_c.mutation.SetMultimediaType(v)
	}
	if _, ok := _c.mutation.MultimediaAudioGain(); !ok {
		v := banner.DefaultMultimediaAudioGain
		_c.mutation.SetMultimediaAudioGain(v)
	}
	if _, ok := _c.mutation.WebpageURL(); !ok {
		v := banner.DefaultWebpageURL
		_c.mutation.SetWebpageURL(v)
	}
	if _, ok := _c.mutation.VideoFile(); !ok {
		v := banner.DefaultVideoFile
		_c.mutation.SetVideoFile(v)
	}
	if _, ok := _c.mutation.ShowCamera(); !ok {
		v := banner.DefaultShowCamera
		_c.mutation.SetShowCamera(v)
	}
	if _, ok := _c.mutation.CameraDeviceID(); !ok {
		v := banner.DefaultCameraDeviceID
		_c.mutation.SetCameraDeviceID(v)
	}
	if _, ok := _c.mutation.LaunchPin(); !ok {
		v := banner.DefaultLaunchPin
		_c.mutation.SetLaunchPin(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BannerCreate) check() error {
	if _, ok := _c.mutation.TemplateRecno(); !ok {
		return &ValidationError{Name: "template_recno", err: errors.New(`ent: missing required field "Banner.template_recno"`)}
	}
	if _, ok := _c.mutation.RecDtsec(); !ok {
		return &ValidationError{Name: "rec_dtsec", err: errors.New(`ent: missing required field "Banner.rec_dtsec"`)}
	}
	if _, ok := _c.mutation.Duration(); !ok {
		return &ValidationError{Name: "duration", err: errors.New(`ent: missing required field "Banner.duration"`)}
	}
	if _, ok := _c.mutation.Msgtype(); !ok {
		return &ValidationError{Name: "msgtype", err: errors.New(`ent: missing required field "Banner.msgtype"`)}
	}
	if _, ok := _c.mutation.Text1(); !ok {
		return &ValidationError{Name: "text1", err: errors.New(`ent: missing required field "Banner.text1"`)}
	}
	if _, ok := _c.mutation.Text2(); !ok {
		return &ValidationError{Name: "text2", err: errors.New(`ent: missing required field "Banner.text2"`)}
	}
	if _, ok := _c.mutation.Text3(); !ok {
		return &ValidationError{Name: "text3", err: errors.New(`ent: missing required field "Banner.text3"`)}
	}
	if _, ok := _c.mutation.Text4(); !ok {
		return &ValidationError{Name: "text4", err: errors.New(`ent: missing required field "Banner.text4"`)}
	}
	if _, ok := _c.mutation.Text5(); !ok {
		return &ValidationError{Name: "text5", err: errors.New(`ent: missing required field "Banner.text5"`)}
	}
	if _, ok := _c.mutation.Details(); !ok {
		return &ValidationError{Name: "details", err: errors.New(`ent: missing required field "Banner.details"`)}
	}
	if _, ok := _c.mutation.AudioGroup(); !ok {
		return &ValidationError{Name: "audio_group", err: errors.New(`ent: missing required field "Banner.audio_group"`)}
	}
	if _, ok := _c.mutation.PlaytimeDuration(); !ok {
		return &ValidationError{Name: "playtime_duration", err: errors.New(`ent: missing required field "Banner.playtime_duration"`)}
	}
	if _, ok := _c.mutation.FlasherDuration(); !ok {
		return &ValidationError{Name: "flasher_duration", err: errors.New(`ent: missing required field "Banner.flasher_duration"`)}
	}
	if _, ok := _c.mutation.LightSignal(); !ok {
		return &ValidationError{Name: "light_signal", err: errors.New(`ent: missing required field "Banner.light_signal"`)}
	}
	if _, ok := _c.mutation.LightDuration(); !ok {
		return &ValidationError{Name: "light_duration", err: errors.New(`ent: missing required field "Banner.light_duration"`)}
	}
	if _, ok := _c.mutation.AudioTtsGain(); !ok {
		return &ValidationError{Name: "audio_tts_gain", err: errors.New(`ent: missing required field "Banner.audio_tts_gain"`)}
	}
	if _, ok := _c.mutation.FlashNewMessage(); !ok {
		return &ValidationError{Name: "flash_new_message", err: errors.New(`ent: missing required field "Banner.flash_new_message"`)}
	}
	if _, ok := _c.mutation.VisibleTime(); !ok {
		return &ValidationError{Name: "visible_time", err: errors.New(`ent: missing required field "Banner.visible_time"`)}
	}
	if _, ok := _c.mutation.VisibleFrequency(); !ok {
		return &ValidationError{Name: "visible_frequency", err: errors.New(`ent: missing required field "Banner.visible_frequency"`)}
	}
	if _, ok := _c.mutation.VisibleDuration(); !ok {
		return &ValidationError{Name: "visible_duration", err: errors.New(`ent: missing required field "Banner.visible_duration"`)}
	}
	if _, ok := _c.mutation.RecordVoiceAtLaunchSelection(); !ok {
		return &ValidationError{Name: "record_voice_at_launch_selection", err: errors.New(`ent: missing required field "Banner.record_voice_at_launch_selection"`)}
	}
	if _, ok := _c.mutation.RecordVoiceAtLaunch(); !ok {
		return &ValidationError{Name: "record_voice_at_launch", err: errors.New(`ent: missing required field "Banner.record_voice_at_launch"`)}
	}
	if _, ok := _c.mutation.AudioRecordedGain(); !ok {
		return &ValidationError{Name: "audio_recorded_gain", err: errors.New(`ent: missing required field "Banner.audio_recorded_gain"`)}
	}
	if _, ok := _c.mutation.PaDeliveryMode(); !ok {
		return &ValidationError{Name: "pa_delivery_mode", err: errors.New(`ent: missing required field "Banner.pa_delivery_mode"`)}
	}
	if _, ok := _c.mutation.AudioRepeat(); !ok {
		return &ValidationError{Name: "audio_repeat", err: errors.New(`ent: missing required field "Banner.audio_repeat"`)}
	}
	if _, ok := _c.mutation.Speed(); !ok {
		return &ValidationError{Name: "speed", err: errors.New(`ent: missing required field "Banner.speed"`)}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "Banner.priority"`)}
	}
	if _, ok := _c.mutation.ExpirePriority(); !ok {
		return &ValidationError{Name: "expire_priority", err: errors.New(`ent: missing required field "Banner.expire_priority"`)}
	}
	if _, ok := _c.mutation.PriorityDuration(); !ok {
		return &ValidationError{Name: "priority_duration", err: errors.New(`ent: missing required field "Banner.priority_duration"`)}
	}
	if _, ok := _c.mutation.PagePriorityAtLaunch(); !ok {
		return &ValidationError{Name: "page_priority_at_launch", err: errors.New(`ent: missing required field "Banner.page_priority_at_launch"`)}
	}
	if _, ok := _c.mutation.MultimediaType(); !ok {
		return &ValidationError{Name: "multimedia_type", err: errors.New(`ent: missing required field "Banner.multimedia_type"`)}
	}
	if _, ok := _c.mutation.MultimediaAudioGain(); !ok {
		return &ValidationError{Name: "multimedia_audio_gain", err: errors.New(`ent: missing required field "Banner.multimedia_audio_gain"`)}
	}
	if _, ok := _c.mutation.WebpageURL(); !ok {
		return &ValidationError{Name: "webpage_url", err: errors.New(`ent: missing required field "Banner.webpage_url"`)}
	}
	if _, ok := _c.mutation.VideoFile(); !ok {
		return &ValidationError{Name: "video_file", err: errors.New(`ent: missing required field "Banner.video_file"`)}
	}
	if _, ok := _c.mutation.ShowCamera(); !ok {
		return &ValidationError{Name: "show_camera", err: errors.New(`ent: missing required field "Banner.show_camera"`)}
	}
	if _, ok := _c.mutation.CameraDeviceID(); !ok {
		return &ValidationError{Name: "camera_device_id", err: errors.New(`ent: missing required field "Banner.camera_device_id"`)}
	}
	if _, ok := _c.mutation.LaunchPin(); !ok {
		return &ValidationError{Name: "launch_pin", err: errors.New(`ent: missing required field "Banner.launch_pin"`)}
	}
	return nil
}

func (_c *BannerCreate) sqlSave(ctx context.Context) (*Banner, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != _node.ID {
		id := _spec.ID.Value.(int64)
		_node.ID = int(id)
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *BannerCreate) createSpec() (*Banner, *sqlgraph.CreateSpec) {
	var (
		_node = &Banner{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(banner.Table, sqlgraph.NewFieldSpec(banner.FieldID, field.TypeInt))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TemplateRecno(); ok {
		_spec.SetField(banner.FieldTemplateRecno, field.TypeInt, value)
		_node.TemplateRecno = value
	}
	if value, ok := _c.mutation.RecDtsec(); ok {
		_spec.SetField(banner.FieldRecDtsec, field.TypeString, value)
		_node.RecDtsec = value
	}
	if value, ok := _c.mutation.Duration(); ok {
		_spec.SetField(banner.FieldDuration, field.TypeInt, value)
		_node.Duration = value
	}
	if value, ok := _c.mutation.Msgtype(); ok {
		_spec.SetField(banner.FieldMsgtype, field.TypeString, value)
		_node.Msgtype = value
	}
	if value, ok := _c.mutation.Text1(); ok {
		_spec.SetField(banner.FieldText1, field.TypeString, value)
		_node.Text1 = value
	}
	if value, ok := _c.mutation.Text2(); ok {
		_spec.SetField(banner.FieldText2, field.TypeString, value)
		_node.Text2 = value
	}
	if value, ok := _c.mutation.Text3(); ok {
		_spec.SetField(banner.FieldText3, field.TypeString, value)
		_node.Text3 = value
	}
	if value, ok := _c.mutation.Text4(); ok {
		_spec.SetField(banner.FieldText4, field.TypeString, value)
		_node.Text4 = value
	}
	if value, ok := _c.mutation.Text5(); ok {
		_spec.SetField(banner.FieldText5, field.TypeString, value)
		_node.Text5 = value
	}
	if value, ok := _c.mutation.Details(); ok {
		_spec.SetField(banner.FieldDetails, field.TypeString, value)
		_node.Details = value
	}
	if value, ok := _c.mutation.AudioGroup(); ok {
		_spec.SetField(banner.FieldAudioGroup, field.TypeString, value)
		_node.AudioGroup = value
	}
	if value, ok := _c.mutation.PlaytimeDuration(); ok {
		_spec.SetField(banner.FieldPlaytimeDuration, field.TypeInt, value)
		_node.PlaytimeDuration = value
	}
	if value, ok := _c.mutation.FlasherDuration(); ok {
		_spec.SetField(banner.FieldFlasherDuration, field.TypeInt, value)
		_node.FlasherDuration = value
	}
	if value, ok := _c.mutation.LightSignal(); ok {
		_spec.SetField(banner.FieldLightSignal, field.TypeString, value)
		_node.LightSignal = value
	}
	if value, ok := _c.mutation.LightDuration(); ok {
		_spec.SetField(banner.FieldLightDuration, field.TypeInt, value)
		_node.LightDuration = value
	}
	if value, ok := _c.mutation.AudioTtsGain(); ok {
		_spec.SetField(banner.FieldAudioTtsGain, field.TypeInt, value)
		_node.AudioTtsGain = value
	}
	if value, ok := _c.mutation.FlashNewMessage(); ok {
		_spec.SetField(banner.FieldFlashNewMessage, field.TypeString, value)
		_node.FlashNewMessage = value
	}
	if value, ok := _c.mutation.VisibleTime(); ok {
		_spec.SetField(banner.FieldVisibleTime, field.TypeString, value)
		_node.VisibleTime = value
	}
	if value, ok := _c.mutation.VisibleFrequency(); ok {
		_spec.SetField(banner.FieldVisibleFrequency, field.TypeString, value)
		_node.VisibleFrequency = value
	}
	if value, ok := _c.mutation.VisibleDuration(); ok {
		_spec.SetField(banner.FieldVisibleDuration, field.TypeString, value)
		_node.VisibleDuration = value
	}
	if value, ok := _c.mutation.RecordVoiceAtLaunchSelection(); ok {
		_spec.SetField(banner.FieldRecordVoiceAtLaunchSelection, field.TypeInt, value)
		_node.RecordVoiceAtLaunchSelection = value
	}
	if value, ok := _c.mutation.RecordVoiceAtLaunch(); ok {
		_spec.SetField(banner.FieldRecordVoiceAtLaunch, field.TypeString, value)
		_node.RecordVoiceAtLaunch = value
	}
	if value, ok := _c.mutation.AudioRecordedGain(); ok {
		_spec.SetField(banner.FieldAudioRecordedGain, field.TypeInt, value)
		_node.AudioRecordedGain = value
	}
	if value, ok := _c.mutation.PaDeliveryMode(); ok {
		_spec.SetField(banner.FieldPaDeliveryMode, field.TypeString, value)
		_node.PaDeliveryMode = value
	}
	if value, ok := _c.mutation.AudioRepeat(); ok {
		_spec.SetField(banner.FieldAudioRepeat, field.TypeString, value)
		_node.AudioRepeat = value
	}
	if value, ok := _c.mutation.Speed(); ok {
		_spec.SetField(banner.FieldSpeed, field.TypeInt, value)
		_node.Speed = value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(banner.FieldPriority, field.TypeInt, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.ExpirePriority(); ok {
		_spec.SetField(banner.FieldExpirePriority, field.TypeInt, value)
		_node.ExpirePriority = value
	}
	if value, ok := _c.mutation.PriorityDuration(); ok {
		_spec.SetField(banner.FieldPriorityDuration, field.TypeInt, value)
		_node.PriorityDuration = value
	}
	if value, ok := _c.mutation.PagePriorityAtLaunch(); ok {
		_spec.SetField(banner.FieldPagePriorityAtLaunch, field.TypeInt, value)
		_node.PagePriorityAtLaunch = value
	}
	if value, ok := _c.mutation.MultimediaType(); ok {
		_spec.SetField(banner.FieldMultimediaType, field.TypeString, value)
		_node.MultimediaType = value
	}
	if value, ok := _c.mutation.MultimediaAudioGain(); ok {
		_spec.SetField(banner.FieldMultimediaAudioGain, field.TypeInt, value)
		_node.MultimediaAudioGain = value
	}
	if value, ok := _c.mutation.WebpageURL(); ok {
		_spec.SetField(banner.FieldWebpageURL, field.TypeString, value)
		_node.WebpageURL = value
	}
	if value, ok := _c.mutation.VideoFile(); ok {
		_spec.SetField(banner.FieldVideoFile, field.TypeString, value)
		_node.VideoFile = value
	}
	if value, ok := _c.mutation.ShowCamera(); ok {
		_spec.SetField(banner.FieldShowCamera, field.TypeString, value)
		_node.ShowCamera = value
	}
	if value, ok := _c.mutation.CameraDeviceID(); ok {
		_spec.SetField(banner.FieldCameraDeviceID, field.TypeString, value)
		_node.CameraDeviceID = value
	}
	if value, ok := _c.mutation.LaunchPin(); ok {
		_spec.SetField(banner.FieldLaunchPin, field.TypeString, value)
		_node.LaunchPin = value
	}
	return _node, _spec
}

// BannerCreateBulk is the builder for creating many Banner entities in bulk.
type BannerCreateBulk struct {
	config
	err      error
	builders []*BannerCreate
}

// Save creates the Banner entities in the database.
func (_c *BannerCreateBulk) Save(ctx context.Context) ([]*Banner, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Banner, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BannerMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil && nodes[i].ID == 0 {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *BannerCreateBulk) SaveX(ctx context.Context) []*Banner {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BannerCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BannerCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
