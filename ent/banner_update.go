// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/messagenet/bannerd/ent/banner"
	"github.com/messagenet/bannerd/ent/predicate"
)

// BannerUpdate is the builder for updating Banner entities.
type BannerUpdate struct {
	config
	hooks    []Hook
	mutation *BannerMutation
}

// Where appends a list predicates to the BannerUpdate builder.
func (_u *BannerUpdate) Where(ps ...predicate.Banner) *BannerUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTemplateRecno sets the "template_recno" field.
func (_u *BannerUpdate) SetTemplateRecno(v int) *BannerUpdate {
	_u.mutation.ResetTemplateRecno()
	_u.mutation.SetTemplateRecno(v)
	return _u
}

// SetNillableTemplateRecno sets the "template_recno" field if the given value is not nil.
func (_u *BannerUpdate) SetNillableTemplateRecno(v *int) *BannerUpdate {
	if v != nil {
		_u.SetTemplateRecno(*v)
	}
	return _u
}

// AddTemplateRecno adds value to the "template_recno" field.
func (_u *BannerUpdate) AddTemplateRecno(v int) *BannerUpdate {
	_u.mutation.AddTemplateRecno(v)
	return _u
}

// SetRecDtsec sets the "rec_dtsec" field.
func (_u *BannerUpdate) SetRecDtsec(v string) *BannerUpdate {
	_u.mutation.SetRecDtsec(v)
	return _u
}

// SetNillableRecDtsec sets the "rec_dtsec" field if the given value is not nil.
func (_u *BannerUpdate) SetNillableRecDtsec(v *string) *BannerUpdate {
	if v != nil {
		_u.SetRecDtsec(*v)
	}
	return _u
}

// SetDuration sets the "duration" field.
func (_u *BannerUpdate) SetDuration(v int) *BannerUpdate {
	_u.mutation.ResetDuration()
	_u.mutation.SetDuration(v)
	return _u
}

// SetNillableDuration sets the "duration" field if the given value is not nil.
func (_u *BannerUpdate) SetNillableDuration(v *int) *BannerUpdate {
	if v != nil {
		_u.SetDuration(*v)
	}
	return _u
}

// AddDuration adds value to the "duration" field.
func (_u *BannerUpdate) AddDuration(v int) *BannerUpdate {
	_u.mutation.AddDuration(v)
	return _u
}

// SetMsgtype sets the "msgtype" field.
func (_u *BannerUpdate) SetMsgtype(v string) *BannerUpdate {
	_u.mutation.SetMsgtype(v)
	return _u
}

// SetNillableMsgtype sets the "msgtype" field if the given value is not nil.
func (_u *BannerUpdate) SetNillableMsgtype(v *string) *BannerUpdate {
	if v != nil {
		_u.SetMsgtype(*v)
	}
	return _u
}

// SetText1 sets the "text1" field.
func (_u *BannerUpdate) SetText1(v string) *BannerUpdate {
	_u.mutation.SetText1(v)
	return _u
}

// SetNillableText1 sets the "text1" field if the given value is not nil.
func (_u *BannerUpdate) SetNillableText1(v *string) *BannerUpdate {
	if v != nil {
		_u.SetText1(*v)
	}
	return _u
}

// SetText2 sets the "text2" field.
func (_u *BannerUpdate) SetText2(v string) *BannerUpdate {
	_u.mutation.SetText2(v)
	return _u
}

// SetNillableText2 sets the "text2" field if the given value is not nil.
func (_u *BannerUpdate) SetNillableText2(v *string) *BannerUpdate {
	if v != nil {
		_u.SetText2(*v)
	}
	return _u
}

// SetText3 sets the "text3" field.
func (_u *BannerUpdate) SetText3(v string) *BannerUpdate {
	_u.mutation.SetText3(v)
	return _u
}

// SetNillableText3 sets the "text3" field if the given value is not nil.
func (_u *BannerUpdate) SetNillableText3(v *string) *BannerUpdate {
	if v != nil {
		_u.SetText3(*v)
	}
	return _u
}

// SetText4 sets the "text4" field.
func (_u *BannerUpdate) SetText4(v string) *BannerUpdate {
	_u.mutation.SetText4(v)
	return _u
}

// SetNillableText4 sets the "text4" field if the given value is not nil.
func (_u *BannerUpdate) SetNillableText4(v *string) *BannerUpdate {
	if v != nil {
		_u.SetText4(*v)
	}
	return _u
}

// SetText5 sets the "text5" field.
func (_u *BannerUpdate) SetText5(v string) *BannerUpdate {
	_u.mutation.SetText5(v)
	return _u
}

// SetNillableText5 sets the "text5" field if the given value is not nil.
func (_u *BannerUpdate) SetNillableText5(v *string) *BannerUpdate {
	if v != nil {
		_u.SetText5(*v)
	}
	return _u
}

// SetDetails sets the "details" field.
func (_u *BannerUpdate) SetDetails(v string) *BannerUpdate {
	_u.mutation.SetDetails(v)
	return _u
}

// SetNillableDetails sets the "details" field if the given value is not nil.
func (_u *BannerUpdate) SetNillableDetails(v *string) *BannerUpdate {
	if v != nil {
		_u.SetDetails(*v)
	}
	return _u
}

// SetAudioGroup sets the "audio_group" field.
func (_u *BannerUpdate) SetAudioGroup(v string) *BannerUpdate {
	_u.mutation.SetAudioGroup(v)
	return _u
}

// SetNillableAudioGroup sets the "audio_group" field if the given value is not nil.
func (_u *BannerUpdate) SetNillableAudioGroup(v *string) *BannerUpdate {
	if v != nil {
		_u.SetAudioGroup(*v)
	}
	return _u
}

// SetPlaytimeDuration sets the "playtime_duration" field.
func (_u *BannerUpdate) SetPlaytimeDuration(v int) *BannerUpdate {
	_u.mutation.ResetPlaytimeDuration()
	_u.mutation.SetPlaytimeDuration(v)
	return _u
}

// SetNillablePlaytimeDuration sets the "playtime_duration" field if the given value is not nil.
func (_u *BannerUpdate) SetNillablePlaytimeDuration(v *int) *BannerUpdate {
	if v != nil {
		_u.SetPlaytimeDuration(*v)
	}
	return _u
}

// AddPlaytimeDuration adds value to the "playtime_duration" field.
func (_u *BannerUpdate) AddPlaytimeDuration(v int) *BannerUpdate {
	_u.mutation.AddPlaytimeDuration(v)
	return _u
}

// SetFlasherDuration sets the "flasher_duration" field.
func (_u *BannerUpdate) SetFlasherDuration(v int) *BannerUpdate {
	_u.mutation.ResetFlasherDuration()
	_u.mutation.SetFlasherDuration(v)
	return _u
}

// SetNillableFlasherDuration sets the "flasher_duration" field if the given value is not nil.
func (_u *BannerUpdate) SetNillableFlasherDuration(v *int) *BannerUpdate {
	if v != nil {
		_u.SetFlasherDuration(*v)
	}
	return _u
}

// AddFlasherDuration adds value to the "flasher_duration" field.
func (_u *BannerUpdate) AddFlasherDuration(v int) *BannerUpdate {
	_u.mutation.AddFlasherDuration(v)
	return _u
}

// SetLightSignal sets the "light_signal" field.
func (_u *BannerUpdate) SetLightSignal(v string) *BannerUpdate {
	_u.mutation.SetLightSignal(v)
	return _u
}

// SetNillableLightSignal sets the "light_signal" field if the given value is not nil.
func (_u *BannerUpdate) SetNillableLightSignal(v *string) *BannerUpdate {
	if v != nil {
		_u.SetLightSignal(*v)
	}
	return _u
}

// SetLightDuration sets the "light_duration" field.
func (_u *BannerUpdate) SetLightDuration(v int) *BannerUpdate {
	_u.mutation.ResetLightDuration()
	_u.mutation.SetLightDuration(v)
	return _u
}

// SetNillableLightDuration sets the "light_duration" field if the given value is not nil.
func (_u *BannerUpdate) SetNillableLightDuration(v *int) *BannerUpdate {
	if v != nil {
		_u.SetLightDuration(*v)
	}
	return _u
}

// AddLightDuration adds value to the "light_duration" field.
func (_u *BannerUpdate) AddLightDuration(v int) *BannerUpdate {
	_u.mutation.AddLightDuration(v)
	return _u
}

// SetAudioTtsGain sets the "audio_tts_gain" field.
func (_u *BannerUpdate) SetAudioTtsGain(v int) *BannerUpdate {
	_u.mutation.ResetAudioTtsGain()
	_u.mutation.SetAudioTtsGain(v)
	return _u
}

// SetNillableAudioTtsGain sets the "audio_tts_gain" field if the given value is not nil.
func (_u *BannerUpdate) SetNillableAudioTtsGain(v *int) *BannerUpdate {
	if v != nil {
		_u.SetAudioTtsGain(*v)
	}
	return _u
}

// AddAudioTtsGain adds value to the "audio_tts_gain" field.
func (_u *BannerUpdate) AddAudioTtsGain(v int) *BannerUpdate {
	_u.mutation.AddAudioTtsGain(v)
	return _u
}

// SetFlashNewMessage sets the "flash_new_message" field.
func (_u *BannerUpdate) SetFlashNewMessage(v string) *BannerUpdate {
	_u.mutation.SetFlashNewMessage(v)
	return _u
}

// SetNillableFlashNewMessage sets the "flash_new_message" field if the given value is not nil.
func (_u *BannerUpdate) SetNillableFlashNewMessage(v *string) *BannerUpdate {
	if v != nil {
		_u.SetFlashNewMessage(*v)
	}
	return _u
}

// SetVisibleTime sets the "visible_time" field.
func (_u *BannerUpdate) SetVisibleTime(v string) *BannerUpdate {
	_u.mutation.SetVisibleTime(v)
	return _u
}

// SetNillableVisibleTime sets the "visible_time" field if the given value is not nil.
func (_u *BannerUpdate) SetNillableVisibleTime(v *string) *BannerUpdate {
	if v != nil {
		_u.SetVisibleTime(*v)
	}
	return _u
}

// SetVisibleFrequency sets the "visible_frequency" field.
func (_u *BannerUpdate) SetVisibleFrequency(v string) *BannerUpdate {
	_u.mutation.SetVisibleFrequency(v)
	return _u
}

// SetNillableVisibleFrequency sets the "visible_frequency" field if the given value is not nil.
func (_u *BannerUpdate) SetNillableVisibleFrequency(v *string) *BannerUpdate {
	if v != nil {
		_u.SetVisibleFrequency(*v)
	}
	return _u
}

// SetVisibleDuration sets the "visible_duration" field.
func (_u *BannerUpdate) SetVisibleDuration(v string) *BannerUpdate {
	_u.mutation.SetVisibleDuration(v)
	return _u
}

// SetNillableVisibleDuration sets the "visible_duration" field if the given value is not nil.
func (_u *BannerUpdate) SetNillableVisibleDuration(v *string) *BannerUpdate {
	if v != nil {
		_u.SetVisibleDuration(*v)
	}
	return _u
}

// SetRecordVoiceAtLaunchSelection sets the "record_voice_at_launch_selection" field.
func (_u *BannerUpdate) SetRecordVoiceAtLaunchSelection(v int) *BannerUpdate {
	_u.mutation.ResetRecordVoiceAtLaunchSelection()
	_u.mutation.SetRecordVoiceAtLaunchSelection(v)
	return _u
}

// SetNillableRecordVoiceAtLaunchSelection sets the "record_voice_at_launch_selection" field if the given value is not nil.
func (_u *BannerUpdate) SetNillableRecordVoiceAtLaunchSelection(v *int) *BannerUpdate {
	if v != nil {
		_u.SetRecordVoiceAtLaunchSelection(*v)
	}
	return _u
}

// AddRecordVoiceAtLaunchSelection adds value to the "record_voice_at_launch_selection" field.
func (_u *BannerUpdate) AddRecordVoiceAtLaunchSelection(v int) *BannerUpdate {
	_u.mutation.AddRecordVoiceAtLaunchSelection(v)
	return _u
}

// SetRecordVoiceAtLaunch sets the "record_voice_at_launch" field.
func (_u *BannerUpdate) SetRecordVoiceAtLaunch(v string) *BannerUpdate {
	_u.mutation.SetRecordVoiceAtLaunch(v)
	return _u
}

// SetNillableRecordVoiceAtLaunch sets the "record_voice_at_launch" field if the given value is not nil.
func (_u *BannerUpdate) SetNillableRecordVoiceAtLaunch(v *string) *BannerUpdate {
	if v != nil {
		_u.SetRecordVoiceAtLaunch(*v)
	}
	return _u
}

// SetAudioRecordedGain sets the "audio_recorded_gain" field.
func (_u *BannerUpdate) SetAudioRecordedGain(v int) *BannerUpdate {
	_u.mutation.ResetAudioRecordedGain()
	_u.mutation.SetAudioRecordedGain(v)
	return _u
}

// SetNillableAudioRecordedGain sets the "audio_recorded_gain" field if the given value is not nil.
func (_u *BannerUpdate) SetNillableAudioRecordedGain(v *int) *BannerUpdate {
	if v != nil {
		_u.SetAudioRecordedGain(*v)
	}
	return _u
}

// AddAudioRecordedGain adds value to the "audio_recorded_gain" field.
func (_u *BannerUpdate) AddAudioRecordedGain(v int) *BannerUpdate {
	_u.mutation.AddAudioRecordedGain(v)
	return _u
}

// SetPaDeliveryMode sets the "pa_delivery_mode" field.
func (_u *BannerUpdate) SetPaDeliveryMode(v string) *BannerUpdate {
	_u.mutation.SetPaDeliveryMode(v)
	return _u
}

// SetNillablePaDeliveryMode sets the "pa_delivery_mode" field if the given value is not nil.
func (_u *BannerUpdate) SetNillablePaDeliveryMode(v *string) *BannerUpdate {
	if v != nil {
		_u.SetPaDeliveryMode(*v)
	}
	return _u
}

// SetAudioRepeat sets the "audio_repeat" field.
func (_u *BannerUpdate) SetAudioRepeat(v string) *BannerUpdate {
	_u.mutation.SetAudioRepeat(v)
	return _u
}

// SetNillableAudioRepeat sets the "audio_repeat" field if the given value is not nil.
func (_u *BannerUpdate) SetNillableAudioRepeat(v *string) *BannerUpdate {
	if v != nil {
		_u.SetAudioRepeat(*v)
	}
	return _u
}

// SetSpeed sets the "speed" field.
func (_u *BannerUpdate) SetSpeed(v int) *BannerUpdate {
	_u.mutation.ResetSpeed()
	_u.mutation.SetSpeed(v)
	return _u
}

// SetNillableSpeed sets the "speed" field if the given value is not nil.
func (_u *BannerUpdate) SetNillableSpeed(v *int) *BannerUpdate {
	if v != nil {
		_u.SetSpeed(*v)
	}
	return _u
}

// AddSpeed adds value to the "speed" field.
func (_u *BannerUpdate) AddSpeed(v int) *BannerUpdate {
	_u.mutation.AddSpeed(v)
	return _u
}

// SetPriority sets the "priority" field.
func (_u *BannerUpdate) SetPriority(v int) *BannerUpdate {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *BannerUpdate) SetNillablePriority(v *int) *BannerUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *BannerUpdate) AddPriority(v int) *BannerUpdate {
	_u.mutation.AddPriority(v)
	return _u
}

// SetExpirePriority sets the "expire_priority" field.
func (_u *BannerUpdate) SetExpirePriority(v int) *BannerUpdate {
	_u.mutation.ResetExpirePriority()
	_u.mutation.SetExpirePriority(v)
	return _u
}

// SetNillableExpirePriority sets the "expire_priority" field if the given value is not nil.
func (_u *BannerUpdate) SetNillableExpirePriority(v *int) *BannerUpdate {
	if v != nil {
		_u.SetExpirePriority(*v)
	}
	return _u
}

// AddExpirePriority adds value to the "expire_priority" field.
func (_u *BannerUpdate) AddExpirePriority(v int) *BannerUpdate {
	_u.mutation.AddExpirePriority(v)
	return _u
}

// SetPriorityDuration sets the "priority_duration" field.
func (_u *BannerUpdate) SetPriorityDuration(v int) *BannerUpdate {
	_u.mutation.ResetPriorityDuration()
	_u.mutation.SetPriorityDuration(v)
	return _u
}

// SetNillablePriorityDuration sets the "priority_duration" field if the given value is not nil.
func (_u *BannerUpdate) SetNillablePriorityDuration(v *int) *BannerUpdate {
	if v != nil {
		_u.SetPriorityDuration(*v)
	}
	return _u
}

// AddPriorityDuration adds value to the "priority_duration" field.
func (_u *BannerUpdate) AddPriorityDuration(v int) *BannerUpdate {
	_u.mutation.AddPriorityDuration(v)
	return _u
}

// SetPagePriorityAtLaunch sets the "page_priority_at_launch" field.
func (_u *BannerUpdate) SetPagePriorityAtLaunch(v int) *BannerUpdate {
	_u.mutation.ResetPagePriorityAtLaunch()
	_u.mutation.SetPagePriorityAtLaunch(v)
	return _u
}

// SetNillablePagePriorityAtLaunch sets the "page_priority_at_launch" field if the given value is not nil.
func (_u *BannerUpdate) SetNillablePagePriorityAtLaunch(v *int) *BannerUpdate {
	if v != nil {
		_u.SetPagePriorityAtLaunch(*v)
	}
	return _u
}

// AddPagePriorityAtLaunch adds value to the "page_priority_at_launch" field.
func (_u *BannerUpdate) AddPagePriorityAtLaunch(v int) *BannerUpdate {
	_u.mutation.AddPagePriorityAtLaunch(v)
	return _u
}

// SetMultimediaType sets the "multimedia_type" field.
func (_u *BannerUpdate) SetMultimediaType(v string) *BannerUpdate {
	_u.mutation.SetMultimediaType(v)
	return _u
}

// SetNillableMultimediaType sets the "multimedia_type" field if the given value is not nil.
func (_u *BannerUpdate) SetNillableMultimediaType(v *string) *BannerUpdate {
	if v != nil {
		_u.SetMultimediaType(*v)
	}
	return _u
}

// SetMultimediaAudioGain sets the "multimedia_audio_gain" field.
func (_u *BannerUpdate) SetMultimediaAudioGain(v int) *BannerUpdate {
	_u.mutation.ResetMultimediaAudioGain()
	_u.mutation.SetMultimediaAudioGain(v)
	return _u
}

// SetNillableMultimediaAudioGain sets the "multimedia_audio_gain" field if the given value is not nil.
func (_u *BannerUpdate) SetNillableMultimediaAudioGain(v *int) *BannerUpdate {
	if v != nil {
		_u.SetMultimediaAudioGain(*v)
	}
	return _u
}

// AddMultimediaAudioGain adds value to the "multimedia_audio_gain" field.
func (_u *BannerUpdate) AddMultimediaAudioGain(v int) *BannerUpdate {
	_u.mutation.AddMultimediaAudioGain(v)
	return _u
}

// SetWebpageURL sets the "webpage_url" field.
func (_u *BannerUpdate) SetWebpageURL(v string) *BannerUpdate {
	_u.mutation.SetWebpageURL(v)
	return _u
}

// SetNillableWebpageURL sets the "webpage_url" field if the given value is not nil.
func (_u *BannerUpdate) SetNillableWebpageURL(v *string) *BannerUpdate {
	if v != nil {
		_u.SetWebpageURL(*v)
	}
	return _u
}

// SetVideoFile sets the "video_file" field.
func (_u *BannerUpdate) SetVideoFile(v string) *BannerUpdate {
	_u.mutation.SetVideoFile(v)
	return _u
}

// SetNillableVideoFile sets the "video_file" field if the given value is not nil.
func (_u *BannerUpdate) SetNillableVideoFile(v *string) *BannerUpdate {
	if v != nil {
		_u.SetVideoFile(*v)
	}
	return _u
}

// SetShowCamera sets the "show_camera" field.
func (_u *BannerUpdate) SetShowCamera(v string) *BannerUpdate {
	_u.mutation.SetShowCamera(v)
	return _u
}

// SetNillableShowCamera sets the "show_camera" field if the given value is not nil.
func (_u *BannerUpdate) SetNillableShowCamera(v *string) *BannerUpdate {
	if v != nil {
		_u.SetShowCamera(*v)
	}
	return _u
}

// SetCameraDeviceID sets the "camera_device_id" field.
func (_u *BannerUpdate) SetCameraDeviceID(v string) *BannerUpdate {
	_u.mutation.SetCameraDeviceID(v)
	return _u
}

// SetNillableCameraDeviceID sets the "camera_device_id" field if the given value is not nil.
func (_u *BannerUpdate) SetNillableCameraDeviceID(v *string) *BannerUpdate {
	if v != nil {
		_u.SetCameraDeviceID(*v)
	}
	return _u
}

// SetLaunchPin sets the "launch_pin" field.
func (_u *BannerUpdate) SetLaunchPin(v string) *BannerUpdate {
	_u.mutation.SetLaunchPin(v)
	return _u
}

// SetNillableLaunchPin sets the "launch_pin" field if the given value is not nil.
func (_u *BannerUpdate) SetNillableLaunchPin(v *string) *BannerUpdate {
	if v != nil {
		_u.SetLaunchPin(*v)
	}
	return _u
}

// Mutation returns the BannerMutation object of the builder.
func (_u *BannerUpdate) Mutation() *BannerMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BannerUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BannerUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BannerUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BannerUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *BannerUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(banner.Table, banner.Columns, sqlgraph.NewFieldSpec(banner.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TemplateRecno(); ok {
		_spec.SetField(banner.FieldTemplateRecno, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTemplateRecno(); ok {
		_spec.AddField(banner.FieldTemplateRecno, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RecDtsec(); ok {
		_spec.SetField(banner.FieldRecDtsec, field.TypeString, value)
	}
	if value, ok := _u.mutation.Duration(); ok {
		_spec.SetField(banner.FieldDuration, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDuration(); ok {
		_spec.AddField(banner.FieldDuration, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Msgtype(); ok {
		_spec.SetField(banner.FieldMsgtype, field.TypeString, value)
	}
	if value, ok := _u.mutation.Text1(); ok {
		_spec.SetField(banner.FieldText1, field.TypeString, value)
	}
	if value, ok := _u.mutation.Text2(); ok {
		_spec.SetField(banner.FieldText2, field.TypeString, value)
	}
	if value, ok := _u.mutation.Text3(); ok {
		_spec.SetField(banner.FieldText3, field.TypeString, value)
	}
	if value, ok := _u.mutation.Text4(); ok {
		_spec.SetField(banner.FieldText4, field.TypeString, value)
	}
	if value, ok := _u.mutation.Text5(); ok {
		_spec.SetField(banner.FieldText5, field.TypeString, value)
	}
	if value, ok := _u.mutation.Details(); ok {
		_spec.SetField(banner.FieldDetails, field.TypeString, value)
	}
	if value, ok := _u.mutation.AudioGroup(); ok {
		_spec.SetField(banner.FieldAudioGroup, field.TypeString, value)
	}
	if value, ok := _u.mutation.PlaytimeDuration(); ok {
		_spec.SetField(banner.FieldPlaytimeDuration, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPlaytimeDuration(); ok {
		_spec.AddField(banner.FieldPlaytimeDuration, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FlasherDuration(); ok {
		_spec.SetField(banner.FieldFlasherDuration, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFlasherDuration(); ok {
		_spec.AddField(banner.FieldFlasherDuration, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LightSignal(); ok {
		_spec.SetField(banner.FieldLightSignal, field.TypeString, value)
	}
	if value, ok := _u.mutation.LightDuration(); ok {
		_spec.SetField(banner.FieldLightDuration, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLightDuration(); ok {
		_spec.AddField(banner.FieldLightDuration, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AudioTtsGain(); ok {
		_spec.SetField(banner.FieldAudioTtsGain, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAudioTtsGain(); ok {
		_spec.AddField(banner.FieldAudioTtsGain, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FlashNewMessage(); ok {
		_spec.SetField(banner.FieldFlashNewMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.VisibleTime(); ok {
		_spec.SetField(banner.FieldVisibleTime, field.TypeString, value)
	}
	if value, ok := _u.mutation.VisibleFrequency(); ok {
		_spec.SetField(banner.FieldVisibleFrequency, field.TypeString, value)
	}
	if value, ok := _u.mutation.VisibleDuration(); ok {
		_spec.SetField(banner.FieldVisibleDuration, field.TypeString, value)
	}
	if value, ok := _u.mutation.RecordVoiceAtLaunchSelection(); ok {
		_spec.SetField(banner.FieldRecordVoiceAtLaunchSelection, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRecordVoiceAtLaunchSelection(); ok {
		_spec.AddField(banner.FieldRecordVoiceAtLaunchSelection, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RecordVoiceAtLaunch(); ok {
		_spec.SetField(banner.FieldRecordVoiceAtLaunch, field.TypeString, value)
	}
	if value, ok := _u.mutation.AudioRecordedGain(); ok {
		_spec.SetField(banner.FieldAudioRecordedGain, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAudioRecordedGain(); ok {
		_spec.AddField(banner.FieldAudioRecordedGain, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PaDeliveryMode(); ok {
		_spec.SetField(banner.FieldPaDeliveryMode, field.TypeString, value)
	}
	if value, ok := _u.mutation.AudioRepeat(); ok {
		_spec.SetField(banner.FieldAudioRepeat, field.TypeString, value)
	}
	if value, ok := _u.mutation.Speed(); ok {
		_spec.SetField(banner.FieldSpeed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSpeed(); ok {
		_spec.AddField(banner.FieldSpeed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(banner.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(banner.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExpirePriority(); ok {
		_spec.SetField(banner.FieldExpirePriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExpirePriority(); ok {
		_spec.AddField(banner.FieldExpirePriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PriorityDuration(); ok {
		_spec.SetField(banner.FieldPriorityDuration, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriorityDuration(); ok {
		_spec.AddField(banner.FieldPriorityDuration, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PagePriorityAtLaunch(); ok {
		_spec.SetField(banner.FieldPagePriorityAtLaunch, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPagePriorityAtLaunch(); ok {
		_spec.AddField(banner.FieldPagePriorityAtLaunch, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MultimediaType(); ok {
		_spec.SetField(banner.FieldMultimediaType, field.TypeString, value)
	}
	if value, ok := _u.mutation.MultimediaAudioGain(); ok {
		_spec.SetField(banner.FieldMultimediaAudioGain, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMultimediaAudioGain(); ok {
		_spec.AddField(banner.FieldMultimediaAudioGain, field.TypeInt, value)
	}
	if value, ok := _u.mutation.WebpageURL(); ok {
		_spec.SetField(banner.FieldWebpageURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.VideoFile(); ok {
		_spec.SetField(banner.FieldVideoFile, field.TypeString, value)
	}
	if value, ok := _u.mutation.ShowCamera(); ok {
		_spec.SetField(banner.FieldShowCamera, field.TypeString, value)
	}
	if value, ok := _u.mutation.CameraDeviceID(); ok {
		_spec.SetField(banner.FieldCameraDeviceID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LaunchPin(); ok {
		_spec.SetField(banner.FieldLaunchPin, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{banner.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BannerUpdateOne is the builder for updating a single Banner entity.
type BannerUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BannerMutation
}

// SetTemplateRecno sets the "template_recno" field.
func (_u *BannerUpdateOne) SetTemplateRecno(v int) *BannerUpdateOne {
	_u.mutation.ResetTemplateRecno()
	_u.mutation.SetTemplateRecno(v)
	return _u
}

// SetNillableTemplateRecno sets the "template_recno" field if the given value is not nil.
func (_u *BannerUpdateOne) SetNillableTemplateRecno(v *int) *BannerUpdateOne {
	if v != nil {
		_u.SetTemplateRecno(*v)
	}
	return _u
}

// AddTemplateRecno adds value to the "template_recno" field.
func (_u *BannerUpdateOne) AddTemplateRecno(v int) *BannerUpdateOne {
	_u.mutation.AddTemplateRecno(v)
	return _u
}

// SetRecDtsec sets the "rec_dtsec" field.
func (_u *BannerUpdateOne) SetRecDtsec(v string) *BannerUpdateOne {
	_u.mutation.SetRecDtsec(v)
	return _u
}

// SetNillableRecDtsec sets the "rec_dtsec" field if the given value is not nil.
func (_u *BannerUpdateOne) SetNillableRecDtsec(v *string) *BannerUpdateOne {
	if v != nil {
		_u.SetRecDtsec(*v)
	}
	return _u
}

// SetDuration sets the "duration" field.
func (_u *BannerUpdateOne) SetDuration(v int) *BannerUpdateOne {
	_u.mutation.ResetDuration()
	_u.mutation.SetDuration(v)
	return _u
}

// SetNillableDuration sets the "duration" field if the given value is not nil.
func (_u *BannerUpdateOne) SetNillableDuration(v *int) *BannerUpdateOne {
	if v != nil {
		_u.SetDuration(*v)
	}
	return _u
}

// AddDuration adds value to the "duration" field.
func (_u *BannerUpdateOne) AddDuration(v int) *BannerUpdateOne {
	_u.mutation.AddDuration(v)
	return _u
}

// SetMsgtype sets the "msgtype" field.
func (_u *BannerUpdateOne) SetMsgtype(v string) *BannerUpdateOne {
	_u.mutation.SetMsgtype(v)
	return _u
}

// SetNillableMsgtype sets the "msgtype" field if the given value is not nil.
func (_u *BannerUpdateOne) SetNillableMsgtype(v *string) *BannerUpdateOne {
	if v != nil {
		_u.SetMsgtype(*v)
	}
	return _u
}

// SetText1 sets the "text1" field.
func (_u *BannerUpdateOne) SetText1(v string) *BannerUpdateOne {
	_u.mutation.SetText1(v)
	return _u
}

// SetNillableText1 sets the "text1" field if the given value is not nil.
func (_u *BannerUpdateOne) SetNillableText1(v *string) *BannerUpdateOne {
	if v != nil {
		_u.SetText1(*v)
	}
	return _u
}

// SetText2 sets the "text2" field.
func (_u *BannerUpdateOne) SetText2(v string) *BannerUpdateOne {
	_u.mutation.SetText2(v)
	return _u
}

// SetNillableText2 sets the "text2" field if the given value is not nil.
func (_u *BannerUpdateOne) SetNillableText2(v *string) *BannerUpdateOne {
	if v != nil {
		_u.SetText2(*v)
	}
	return _u
}

// SetText3 sets the "text3" field.
func (_u *BannerUpdateOne) SetText3(v string) *BannerUpdateOne {
	_u.mutation.SetText3(v)
	return _u
}

// SetNillableText3 sets the "text3" field if the given value is not nil.
func (_u *BannerUpdateOne) SetNillableText3(v *string) *BannerUpdateOne {
	if v != nil {
		_u.SetText3(*v)
	}
	return _u
}

// SetText4 sets the "text4" field.
func (_u *BannerUpdateOne) SetText4(v string) *BannerUpdateOne {
	_u.mutation.SetText4(v)
	return _u
}

// SetNillableText4 sets the "text4" field if the given value is not nil.
func (_u *BannerUpdateOne) SetNillableText4(v *string) *BannerUpdateOne {
	if v != nil {
		_u.SetText4(*v)
	}
	return _u
}

// SetText5 sets the "text5" field.
func (_u *BannerUpdateOne) SetText5(v string) *BannerUpdateOne {
	_u.mutation.SetText5(v)
	return _u
}

// SetNillableText5 sets the "text5" field if the given value is not nil.
func (_u *BannerUpdateOne) SetNillableText5(v *string) *BannerUpdateOne {
	if v != nil {
		_u.SetText5(*v)
	}
	return _u
}

// SetDetails sets the "details" field.
func (_u *BannerUpdateOne) SetDetails(v string) *BannerUpdateOne {
	_u.mutation.SetDetails(v)
	return _u
}

// SetNillableDetails sets the "details" field if the given value is not nil.
func (_u *BannerUpdateOne) SetNillableDetails(v *string) *BannerUpdateOne {
	if v != nil {
		_u.SetDetails(*v)
	}
	return _u
}

// SetAudioGroup sets the "audio_group" field.
func (_u *BannerUpdateOne) SetAudioGroup(v string) *BannerUpdateOne {
	_u.mutation.SetAudioGroup(v)
	return _u
}

// SetNillableAudioGroup sets the "audio_group" field if the given value is not nil.
func (_u *BannerUpdateOne) SetNillableAudioGroup(v *string) *BannerUpdateOne {
	if v != nil {
		_u.SetAudioGroup(*v)
	}
	return _u
}

// SetPlaytimeDuration sets the "playtime_duration" field.
func (_u *BannerUpdateOne) SetPlaytimeDuration(v int) *BannerUpdateOne {
	_u.mutation.ResetPlaytimeDuration()
	_u.mutation.SetPlaytimeDuration(v)
	return _u
}

// SetNillablePlaytimeDuration sets the "playtime_duration" field if the given value is not nil.
func (_u *BannerUpdateOne) SetNillablePlaytimeDuration(v *int) *BannerUpdateOne {
	if v != nil {
		_u.SetPlaytimeDuration(*v)
	}
	return _u
}

// AddPlaytimeDuration adds value to the "playtime_duration" field.
func (_u *BannerUpdateOne) AddPlaytimeDuration(v int) *BannerUpdateOne {
	_u.mutation.AddPlaytimeDuration(v)
	return _u
}

// SetFlasherDuration sets the "flasher_duration" field.
func (_u *BannerUpdateOne) SetFlasherDuration(v int) *BannerUpdateOne {
	_u.mutation.ResetFlasherDuration()
	_u.mutation.SetFlasherDuration(v)
	return _u
}

// SetNillableFlasherDuration sets the "flasher_duration" field if the given value is not nil.
func (_u *BannerUpdateOne) SetNillableFlasherDuration(v *int) *BannerUpdateOne {
	if v != nil {
		_u.SetFlasherDuration(*v)
	}
	return _u
}

// AddFlasherDuration adds value to the "flasher_duration" field.
func (_u *BannerUpdateOne) AddFlasherDuration(v int) *BannerUpdateOne {
	_u.mutation.AddFlasherDuration(v)
	return _u
}

// SetLightSignal sets the "light_signal" field.
func (_u *BannerUpdateOne) SetLightSignal(v string) *BannerUpdateOne {
	_u.mutation.SetLightSignal(v)
	return _u
}

// SetNillableLightSignal sets the "light_signal" field if the given value is not nil.
func (_u *BannerUpdateOne) SetNillableLightSignal(v *string) *BannerUpdateOne {
	if v != nil {
		_u.SetLightSignal(*v)
	}
	return _u
}

// SetLightDuration sets the "light_duration" field.
func (_u *BannerUpdateOne) SetLightDuration(v int) *BannerUpdateOne {
	_u.mutation.ResetLightDuration()
	_u.mutation.SetLightDuration(v)
	return _u
}

// SetNillableLightDuration sets the "light_duration" field if the given value is not nil.
func (_u *BannerUpdateOne) SetNillableLightDuration(v *int) *BannerUpdateOne {
	if v != nil {
		_u.SetLightDuration(*v)
	}
	return _u
}

// AddLightDuration adds value to the "light_duration" field.
func (_u *BannerUpdateOne) AddLightDuration(v int) *BannerUpdateOne {
	_u.mutation.AddLightDuration(v)
	return _u
}

// SetAudioTtsGain sets the "audio_tts_gain" field.
func (_u *BannerUpdateOne) SetAudioTtsGain(v int) *BannerUpdateOne {
	_u.mutation.ResetAudioTtsGain()
	_u.mutation.SetAudioTtsGain(v)
	return _u
}

// SetNillableAudioTtsGain sets the "audio_tts_gain" field if the given value is not nil.
func (_u *BannerUpdateOne) SetNillableAudioTtsGain(v *int) *BannerUpdateOne {
	if v != nil {
		_u.SetAudioTtsGain(*v)
	}
	return _u
}

// AddAudioTtsGain adds value to the "audio_tts_gain" field.
func (_u *BannerUpdateOne) AddAudioTtsGain(v int) *BannerUpdateOne {
	_u.mutation.AddAudioTtsGain(v)
	return _u
}

// SetFlashNewMessage sets the "flash_new_message" field.
func (_u *BannerUpdateOne) SetFlashNewMessage(v string) *BannerUpdateOne {
	_u.mutation.SetFlashNewMessage(v)
	return _u
}

// SetNillableFlashNewMessage sets the "flash_new_message" field if the given value is not nil.
func (_u *BannerUpdateOne) SetNillableFlashNewMessage(v *string) *BannerUpdateOne {
	if v != nil {
		_u.SetFlashNewMessage(*v)
	}
	return _u
}

// SetVisibleTime sets the "visible_time" field.
func (_u *BannerUpdateOne) SetVisibleTime(v string) *BannerUpdateOne {
	_u.mutation.SetVisibleTime(v)
	return _u
}

// SetNillableVisibleTime sets the "visible_time" field if the given value is not nil.
func (_u *BannerUpdateOne) SetNillableVisibleTime(v *string) *BannerUpdateOne {
	if v != nil {
		_u.SetVisibleTime(*v)
	}
	return _u
}

// SetVisibleFrequency sets the "visible_frequency" field.
func (_u *BannerUpdateOne) SetVisibleFrequency(v string) *BannerUpdateOne {
	_u.mutation.SetVisibleFrequency(v)
	return _u
}

// SetNillableVisibleFrequency sets the "visible_frequency" field if the given value is not nil.
func (_u *BannerUpdateOne) SetNillableVisibleFrequency(v *string) *BannerUpdateOne {
	if v != nil {
		_u.SetVisibleFrequency(*v)
	}
	return _u
}

// SetVisibleDuration sets the "visible_duration" field.
func (_u *BannerUpdateOne) SetVisibleDuration(v string) *BannerUpdateOne {
	_u.mutation.SetVisibleDuration(v)
	return _u
}

// SetNillableVisibleDuration sets the "visible_duration" field if the given value is not nil.
func (_u *BannerUpdateOne) SetNillableVisibleDuration(v *string) *BannerUpdateOne {
	if v != nil {
		_u.SetVisibleDuration(*v)
	}
	return _u
}

// SetRecordVoiceAtLaunchSelection sets the "record_voice_at_launch_selection" field.
func (_u *BannerUpdateOne) SetRecordVoiceAtLaunchSelection(v int) *BannerUpdateOne {
	_u.mutation.ResetRecordVoiceAtLaunchSelection()
	_u.mutation.SetRecordVoiceAtLaunchSelection(v)
	return _u
}

// SetNillableRecordVoiceAtLaunchSelection sets the "record_voice_at_launch_selection" field if the given value is not nil.
func (_u *BannerUpdateOne) SetNillableRecordVoiceAtLaunchSelection(v *int) *BannerUpdateOne {
	if v != nil {
		_u.SetRecordVoiceAtLaunchSelection(*v)
	}
	return _u
}

// AddRecordVoiceAtLaunchSelection adds value to the "record_voice_at_launch_selection" field.
func (_u *BannerUpdateOne) AddRecordVoiceAtLaunchSelection(v int) *BannerUpdateOne {
	_u.mutation.AddRecordVoiceAtLaunchSelection(v)
	return _u
}

// SetRecordVoiceAtLaunch sets the "record_voice_at_launch" field.
func (_u *BannerUpdateOne) SetRecordVoiceAtLaunch(v string) *BannerUpdateOne {
	_u.mutation.SetRecordVoiceAtLaunch(v)
	return _u
}

// SetNillableRecordVoiceAtLaunch sets the "record_voice_at_launch" field if the given value is not nil.
func (_u *BannerUpdateOne) SetNillableRecordVoiceAtLaunch(v *string) *BannerUpdateOne {
	if v != nil {
		_u.SetRecordVoiceAtLaunch(*v)
	}
	return _u
}

// SetAudioRecordedGain sets the "audio_recorded_gain" field.
func (_u *BannerUpdateOne) SetAudioRecordedGain(v int) *BannerUpdateOne {
	_u.mutation.ResetAudioRecordedGain()
	_u.mutation.SetAudioRecordedGain(v)
	return _u
}

// SetNillableAudioRecordedGain sets the "audio_recorded_gain" field if the given value is not nil.
func (_u *BannerUpdateOne) SetNillableAudioRecordedGain(v *int) *BannerUpdateOne {
	if v != nil {
		_u.SetAudioRecordedGain(*v)
	}
	return _u
}

// AddAudioRecordedGain adds value to the "audio_recorded_gain" field.
func (_u *BannerUpdateOne) AddAudioRecordedGain(v int) *BannerUpdateOne {
	_u.mutation.AddAudioRecordedGain(v)
	return _u
}

// SetPaDeliveryMode sets the "pa_delivery_mode" field.
func (_u *BannerUpdateOne) SetPaDeliveryMode(v string) *BannerUpdateOne {
	_u.mutation.SetPaDeliveryMode(v)
	return _u
}

// SetNillablePaDeliveryMode sets the "pa_delivery_mode" field if the given value is not nil.
func (_u *BannerUpdateOne) SetNillablePaDeliveryMode(v *string) *BannerUpdateOne {
	if v != nil {
		_u.SetPaDeliveryMode(*v)
	}
	return _u
}

// SetAudioRepeat sets the "audio_repeat" field.
func (_u *BannerUpdateOne) SetAudioRepeat(v string) *BannerUpdateOne {
	_u.mutation.SetAudioRepeat(v)
	return _u
}

// SetNillableAudioRepeat sets the "audio_repeat" field if the given value is not nil.
func (_u *BannerUpdateOne) SetNillableAudioRepeat(v *string) *BannerUpdateOne {
	if v != nil {
		_u.SetAudioRepeat(*v)
	}
	return _u
}

// SetSpeed sets the "speed" field.
func (_u *BannerUpdateOne) SetSpeed(v int) *BannerUpdateOne {
	_u.mutation.ResetSpeed()
	_u.mutation.SetSpeed(v)
	return _u
}

// SetNillableSpeed sets the "speed" field if the given value is not nil.
func (_u *BannerUpdateOne) SetNillableSpeed(v *int) *BannerUpdateOne {
	if v != nil {
		_u.SetSpeed(*v)
	}
	return _u
}

// AddSpeed adds value to the "speed" field.
func (_u *BannerUpdateOne) AddSpeed(v int) *BannerUpdateOne {
	_u.mutation.AddSpeed(v)
	return _u
}

// SetPriority sets the "priority" field.
func (_u *BannerUpdateOne) SetPriority(v int) *BannerUpdateOne {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *BannerUpdateOne) SetNillablePriority(v *int) *BannerUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *BannerUpdateOne) AddPriority(v int) *BannerUpdateOne {
	_u.mutation.AddPriority(v)
	return _u
}

// SetExpirePriority sets the "expire_priority" field.
func (_u *BannerUpdateOne) SetExpirePriority(v int) *BannerUpdateOne {
	_u.mutation.ResetExpirePriority()
	_u.mutation.SetExpirePriority(v)
	return _u
}

// SetNillableExpirePriority sets the "expire_priority" field if the given value is not nil.
func (_u *BannerUpdateOne) SetNillableExpirePriority(v *int) *BannerUpdateOne {
	if v != nil {
		_u.SetExpirePriority(*v)
	}
	return _u
}

// AddExpirePriority adds value to the "expire_priority" field.
func (_u *BannerUpdateOne) AddExpirePriority(v int) *BannerUpdateOne {
	_u.mutation.AddExpirePriority(v)
	return _u
}

// SetPriorityDuration sets the "priority_duration" field.
func (_u *BannerUpdateOne) SetPriorityDuration(v int) *BannerUpdateOne {
	_u.mutation.ResetPriorityDuration()
	_u.mutation.SetPriorityDuration(v)
	return _u
}

// SetNillablePriorityDuration sets the "priority_duration" field if the given value is not nil.
func (_u *BannerUpdateOne) SetNillablePriorityDuration(v *int) *BannerUpdateOne {
	if v != nil {
		_u.SetPriorityDuration(*v)
	}
	return _u
}

// AddPriorityDuration adds value to the "priority_duration" field.
func (_u *BannerUpdateOne) AddPriorityDuration(v int) *BannerUpdateOne {
	_u.mutation.AddPriorityDuration(v)
	return _u
}

// SetPagePriorityAtLaunch sets the "page_priority_at_launch" field.
func (_u *BannerUpdateOne) SetPagePriorityAtLaunch(v int) *BannerUpdateOne {
	_u.mutation.ResetPagePriorityAtLaunch()
	_u.mutation.SetPagePriorityAtLaunch(v)
	return _u
}

// SetNillablePagePriorityAtLaunch sets the "page_priority_at_launch" field if the given value is not nil.
func (_u *BannerUpdateOne) SetNillablePagePriorityAtLaunch(v *int) *BannerUpdateOne {
	if v != nil {
		_u.SetPagePriorityAtLaunch(*v)
	}
	return _u
}

// AddPagePriorityAtLaunch adds value to the "page_priority_at_launch" field.
func (_u *BannerUpdateOne) AddPagePriorityAtLaunch(v int) *BannerUpdateOne {
	_u.mutation.AddPagePriorityAtLaunch(v)
	return _u
}

// SetMultimediaType sets the "multimedia_type" field.
func (_u *BannerUpdateOne) SetMultimediaType(v string) *BannerUpdateOne {
	_u.mutation.SetMultimediaType(v)
	return _u
}

// SetNillableMultimediaType sets the "multimedia_type" field if the given value is not nil.
func (_u *BannerUpdateOne) SetNillableMultimediaType(v *string) *BannerUpdateOne {
	if v != nil {
		_u.SetMultimediaType(*v)
	}
	return _u
}

// SetMultimediaAudioGain sets the "multimedia_audio_gain" field.
func (_u *BannerUpdateOne) SetMultimediaAudioGain(v int) *BannerUpdateOne {
	_u.mutation.ResetMultimediaAudioGain()
	_u.mutation.SetMultimediaAudioGain(v)
	return _u
}

// SetNillableMultimediaAudioGain sets the "multimedia_audio_gain" field if the given value is not nil.
func (_u *BannerUpdateOne) SetNillableMultimediaAudioGain(v *int) *BannerUpdateOne {
	if v != nil {
		_u.SetMultimediaAudioGain(*v)
	}
	return _u
}

// AddMultimediaAudioGain adds value to the "multimedia_audio_gain" field.
func (_u *BannerUpdateOne) AddMultimediaAudioGain(v int) *BannerUpdateOne {
	_u.mutation.AddMultimediaAudioGain(v)
	return _u
}

// SetWebpageURL sets the "webpage_url" field.
func (_u *BannerUpdateOne) SetWebpageURL(v string) *BannerUpdateOne {
	_u.mutation.SetWebpageURL(v)
	return _u
}

// SetNillableWebpageURL sets the "webpage_url" field if the given value is not nil.
func (_u *BannerUpdateOne) SetNillableWebpageURL(v *string) *BannerUpdateOne {
	if v != nil {
		_u.SetWebpageURL(*v)
	}
	return _u
}

// SetVideoFile sets the "video_file" field.
func (_u *BannerUpdateOne) SetVideoFile(v string) *BannerUpdateOne {
	_u.mutation.SetVideoFile(v)
	return _u
}

// SetNillableVideoFile sets the "video_file" field if the given value is not nil.
func (_u *BannerUpdateOne) SetNillableVideoFile(v *string) *BannerUpdateOne {
	if v != nil {
		_u.SetVideoFile(*v)
	}
	return _u
}

// SetShowCamera sets the "show_camera" field.
func (_u *BannerUpdateOne) SetShowCamera(v string) *BannerUpdateOne {
	_u.mutation.SetShowCamera(v)
	return _u
}

// SetNillableShowCamera sets the "show_camera" field if the given value is not nil.
func (_u *BannerUpdateOne) SetNillableShowCamera(v *string) *BannerUpdateOne {
	if v != nil {
		_u.SetShowCamera(*v)
	}
	return _u
}

// SetCameraDeviceID sets the "camera_device_id" field.
func (_u *BannerUpdateOne) SetCameraDeviceID(v string) *BannerUpdateOne {
	_u.mutation.SetCameraDeviceID(v)
	return _u
}

// SetNillableCameraDeviceID sets the "camera_device_id" field if the given value is not nil.
func (_u *BannerUpdateOne) SetNillableCameraDeviceID(v *string) *BannerUpdateOne {
	if v != nil {
		_u.SetCameraDeviceID(*v)
	}
	return _u
}

// SetLaunchPin sets the "launch_pin" field.
func (_u *BannerUpdateOne) SetLaunchPin(v string) *BannerUpdateOne {
	_u.mutation.SetLaunchPin(v)
	return _u
}

// SetNillableLaunchPin sets the "launch_pin" field if the given value is not nil.
func (_u *BannerUpdateOne) SetNillableLaunchPin(v *string) *BannerUpdateOne {
	if v != nil {
		_u.SetLaunchPin(*v)
	}
	return _u
}

// Mutation returns the BannerMutation object of the builder.
func (_u *BannerUpdateOne) Mutation() *BannerMutation {
	return _u.mutation
}

// Where appends a list predicates to the BannerUpdate builder.
func (_u *BannerUpdateOne) Where(ps ...predicate.Banner) *BannerUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BannerUpdateOne) Select(field string, fields ...string) *BannerUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Banner entity.
func (_u *BannerUpdateOne) Save(ctx context.Context) (*Banner, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BannerUpdateOne) SaveX(ctx context.Context) *Banner {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BannerUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BannerUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *BannerUpdateOne) sqlSave(ctx context.Context) (_node *Banner, err error) {
	_spec := sqlgraph.NewUpdateSpec(banner.Table, banner.Columns, sqlgraph.NewFieldSpec(banner.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Banner.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, banner.FieldID)
		for _, f := range fields {
			if !banner.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != banner.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TemplateRecno(); ok {
		_spec.SetField(banner.FieldTemplateRecno, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTemplateRecno(); ok {
		_spec.AddField(banner.FieldTemplateRecno, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RecDtsec(); ok {
		_spec.SetField(banner.FieldRecDtsec, field.TypeString, value)
	}
	if value, ok := _u.mutation.Duration(); ok {
		_spec.SetField(banner.FieldDuration, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDuration(); ok {
		_spec.AddField(banner.FieldDuration, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Msgtype(); ok {
		_spec.SetField(banner.FieldMsgtype, field.TypeString, value)
	}
	if value, ok := _u.mutation.Text1(); ok {
		_spec.SetField(banner.FieldText1, field.TypeString, value)
	}
	if value, ok := _u.mutation.Text2(); ok {
		_spec.SetField(banner.FieldText2, field.TypeString, value)
	}
	if value, ok := _u.mutation.Text3(); ok {
		_spec.SetField(banner.FieldText3, field.TypeString, value)
	}
	if value, ok := _u.mutation.Text4(); ok {
		_spec.SetField(banner.FieldText4, field.TypeString, value)
	}
	if value, ok := _u.mutation.Text5(); ok {
		_spec.SetField(banner.FieldText5, field.TypeString, value)
	}
	if value, ok := _u.mutation.Details(); ok {
		_spec.SetField(banner.FieldDetails, field.TypeString, value)
	}
	if value, ok := _u.mutation.AudioGroup(); ok {
		_spec.SetField(banner.FieldAudioGroup, field.TypeString, value)
	}
	if value, ok := _u.mutation.PlaytimeDuration(); ok {
		_spec.SetField(banner.FieldPlaytimeDuration, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPlaytimeDuration(); ok {
		_spec.AddField(banner.FieldPlaytimeDuration, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FlasherDuration(); ok {
		_spec.SetField(banner.FieldFlasherDuration, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFlasherDuration(); ok {
		_spec.AddField(banner.FieldFlasherDuration, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LightSignal(); ok {
		_spec.SetField(banner.FieldLightSignal, field.TypeString, value)
	}
	if value, ok := _u.mutation.LightDuration(); ok {
		_spec.SetField(banner.FieldLightDuration, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLightDuration(); ok {
		_spec.AddField(banner.FieldLightDuration, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AudioTtsGain(); ok {
		_spec.SetField(banner.FieldAudioTtsGain, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAudioTtsGain(); ok {
		_spec.AddField(banner.FieldAudioTtsGain, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FlashNewMessage(); ok {
		_spec.SetField(banner.FieldFlashNewMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.VisibleTime(); ok {
		_spec.SetField(banner.FieldVisibleTime, field.TypeString, value)
	}
	if value, ok := _u.mutation.VisibleFrequency(); ok {
		_spec.SetField(banner.FieldVisibleFrequency, field.TypeString, value)
	}
	if value, ok := _u.mutation.VisibleDuration(); ok {
		_spec.SetField(banner.FieldVisibleDuration, field.TypeString, value)
	}
	if value, ok := _u.mutation.RecordVoiceAtLaunchSelection(); ok {
		_spec.SetField(banner.FieldRecordVoiceAtLaunchSelection, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRecordVoiceAtLaunchSelection(); ok {
		_spec.AddField(banner.FieldRecordVoiceAtLaunchSelection, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RecordVoiceAtLaunch(); ok {
		_spec.SetField(banner.FieldRecordVoiceAtLaunch, field.TypeString, value)
	}
	if value, ok := _u.mutation.AudioRecordedGain(); ok {
		_spec.SetField(banner.FieldAudioRecordedGain, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAudioRecordedGain(); ok {
		_spec.AddField(banner.FieldAudioRecordedGain, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PaDeliveryMode(); ok {
		_spec.SetField(banner.FieldPaDeliveryMode, field.TypeString, value)
	}
	if value, ok := _u.mutation.AudioRepeat(); ok {
		_spec.SetField(banner.FieldAudioRepeat, field.TypeString, value)
	}
	if value, ok := _u.mutation.Speed(); ok {
		_spec.SetField(banner.FieldSpeed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSpeed(); ok {
		_spec.AddField(banner.FieldSpeed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(banner.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(banner.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExpirePriority(); ok {
		_spec.SetField(banner.FieldExpirePriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExpirePriority(); ok {
		_spec.AddField(banner.FieldExpirePriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PriorityDuration(); ok {
		_spec.SetField(banner.FieldPriorityDuration, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriorityDuration(); ok {
		_spec.AddField(banner.FieldPriorityDuration, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PagePriorityAtLaunch(); ok {
		_spec.SetField(banner.FieldPagePriorityAtLaunch, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPagePriorityAtLaunch(); ok {
		_spec.AddField(banner.FieldPagePriorityAtLaunch, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MultimediaType(); ok {
		_spec.SetField(banner.FieldMultimediaType, field.TypeString, value)
	}
	if value, ok := _u.mutation.MultimediaAudioGain(); ok {
		_spec.SetField(banner.FieldMultimediaAudioGain, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMultimediaAudioGain(); ok {
		_spec.AddField(banner.FieldMultimediaAudioGain, field.TypeInt, value)
	}
	if value, ok := _u.mutation.WebpageURL(); ok {
		_spec.SetField(banner.FieldWebpageURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.VideoFile(); ok {
		_spec.SetField(banner.FieldVideoFile, field.TypeString, value)
	}
	if value, ok := _u.mutation.ShowCamera(); ok {
		_spec.SetField(banner.FieldShowCamera, field.TypeString, value)
	}
	if value, ok := _u.mutation.CameraDeviceID(); ok {
		_spec.SetField(banner.FieldCameraDeviceID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LaunchPin(); ok {
		_spec.SetField(banner.FieldLaunchPin, field.TypeString, value)
	}
	_node = &Banner{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{banner.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
