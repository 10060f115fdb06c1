// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/messagenet/bannerd/ent/banner"
)

// Banner is the model entity for the Banner schema.
type Banner struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// TemplateRecno holds the value of the "template_recno" field.
	TemplateRecno int `json:"template_recno,omitempty"`
	// Launch timestamp, seconds-resolution string
	RecDtsec string `json:"rec_dtsec,omitempty"`
	// Duration holds the value of the "duration" field.
	Duration int `json:"duration,omitempty"`
	// Msgtype holds the value of the "msgtype" field.
	Msgtype string `json:"msgtype,omitempty"`
	// Text1 holds the value of the "text1" field.
	Text1 string `json:"text1,omitempty"`
	// Text2 holds the value of the "text2" field.
	Text2 string `json:"text2,omitempty"`
	// Text3 holds the value of the "text3" field.
	Text3 string `json:"text3,omitempty"`
	// Text4 holds the value of the "text4" field.
	Text4 string `json:"text4,omitempty"`
	// Text5 holds the value of the "text5" field.
	Text5 string `json:"text5,omitempty"`
	// Details holds the value of the "details" field.
	Details string `json:"details,omitempty"`
	// Single group name, or the literals 'multiple' / 'choose'
	AudioGroup string `json:"audio_group,omitempty"`
	// PlaytimeDuration holds the value of the "playtime_duration" field.
	PlaytimeDuration int `json:"playtime_duration,omitempty"`
	// FlasherDuration holds the value of the "flasher_duration" field.
	FlasherDuration int `json:"flasher_duration,omitempty"`
	// LightSignal holds the value of the "light_signal" field.
	LightSignal string `json:"light_signal,omitempty"`
	// LightDuration holds the value of the "light_duration" field.
	LightDuration int `json:"light_duration,omitempty"`
	// AudioTtsGain holds the value of the "audio_tts_gain" field.
	AudioTtsGain int `json:"audio_tts_gain,omitempty"`
	// FlashNewMessage holds the value of the "flash_new_message" field.
	FlashNewMessage string `json:"flash_new_message,omitempty"`
	// VisibleTime holds the value of the "visible_time" field.
	VisibleTime string `json:"visible_time,omitempty"`
	// VisibleFrequency holds the value of the "visible_frequency" field.
	VisibleFrequency string `json:"visible_frequency,omitempty"`
	// VisibleDuration holds the value of the "visible_duration" field.
	VisibleDuration string `json:"visible_duration,omitempty"`
	// RecordVoiceAtLaunchSelection holds the value of the "record_voice_at_launch_selection" field.
	RecordVoiceAtLaunchSelection int `json:"record_voice_at_launch_selection,omitempty"`
	// RecordVoiceAtLaunch holds the value of the "record_voice_at_launch" field.
	RecordVoiceAtLaunch string `json:"record_voice_at_launch,omitempty"`
	// AudioRecordedGain holds the value of the "audio_recorded_gain" field.
	AudioRecordedGain int `json:"audio_recorded_gain,omitempty"`
	// PaDeliveryMode holds the value of the "pa_delivery_mode" field.
	PaDeliveryMode string `json:"pa_delivery_mode,omitempty"`
	// AudioRepeat holds the value of the "audio_repeat" field.
	AudioRepeat string `json:"audio_repeat,omitempty"`
	// Speed holds the value of the "speed" field.
	Speed int `json:"speed,omitempty"`
	// Priority holds the value of the "priority" field.
	Priority int `json:"priority,omitempty"`
	// ExpirePriority holds the value of the "expire_priority" field.
	ExpirePriority int `json:"expire_priority,omitempty"`
	// PriorityDuration holds the value of the "priority_duration" field.
	PriorityDuration int `json:"priority_duration,omitempty"`
	// PagePriorityAtLaunch holds the value of the "page_priority_at_launch" field.
	PagePriorityAtLaunch int `json:"page_priority_at_launch,omitempty"`
	// video, webpage, webmedia, locationsdisplay, geolocationsmap, or empty for scrolling text
	MultimediaType string `json:"multimedia_type,omitempty"`
	// MultimediaAudioGain holds the value of the "multimedia_audio_gain" field.
	MultimediaAudioGain int `json:"multimedia_audio_gain,omitempty"`
	// URL for webpage/webmedia messages
	WebpageURL string `json:"webpage_url,omitempty"`
	// Multimedia file path for video messages
	VideoFile string `json:"video_file,omitempty"`
	// ShowCamera holds the value of the "show_camera" field.
	ShowCamera string `json:"show_camera,omitempty"`
	// CameraDeviceID holds the value of the "camera_device_id" field.
	CameraDeviceID string `json:"camera_device_id,omitempty"`
	// LaunchPin holds the value of the "launch_pin" field.
	LaunchPin    string `json:"launch_pin,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Banner) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case banner.FieldID, banner.FieldTemplateRecno, banner.FieldDuration, banner.FieldPlaytimeDuration, banner.FieldFlasherDuration, banner.FieldLightDuration, banner.FieldAudioTtsGain, banner.FieldRecordVoiceAtLaunchSelection, banner.FieldAudioRecordedGain, banner.FieldSpeed, banner.FieldPriority, banner.FieldExpirePriority, banner.FieldPriorityDuration, banner.FieldPagePriorityAtLaunch, banner.FieldMultimediaAudioGain:
			values[i] = new(sql.NullInt64)
		case banner.FieldRecDtsec, banner.FieldMsgtype, banner.FieldText1, banner.FieldText2, banner.FieldText3, banner.FieldText4, banner.FieldText5, banner.FieldDetails, banner.FieldAudioGroup, banner.FieldLightSignal, banner.FieldFlashNewMessage, banner.FieldVisibleTime, banner.FieldVisibleFrequency, banner.FieldVisibleDuration, banner.FieldRecordVoiceAtLaunch, banner.FieldPaDeliveryMode, banner.FieldAudioRepeat, banner.FieldMultimediaType, banner.FieldWebpageURL, banner.FieldVideoFile, banner.FieldShowCamera, banner.FieldCameraDeviceID, banner.FieldLaunchPin:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Banner fields.
func (_m *Banner) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case banner.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case banner.FieldTemplateRecno:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field template_recno", values[i])
			} else if value.Valid {
				_m.TemplateRecno = int(value.Int64)
			}
		case banner.FieldRecDtsec:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field rec_dtsec", values[i])
			} else if value.Valid {
				_m.RecDtsec = value.String
			}
		case banner.FieldDuration:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration", values[i])
			} else if value.Valid {
				_m.Duration = int(value.Int64)
			}
		case banner.FieldMsgtype:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field msgtype", values[i])
			} else if value.Valid {
				_m.Msgtype = value.String
			}
		case banner.FieldText1:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field text1", values[i])
			} else if value.Valid {
				_m.Text1 = value.String
			}
		case banner.FieldText2:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field text2", values[i])
			} else if value.Valid {
				_m.Text2 = value.String
			}
		case banner.FieldText3:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field text3", values[i])
			} else if value.Valid {
				_m.Text3 = value.String
			}
		case banner.FieldText4:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field text4", values[i])
			} else if value.Valid {
				_m.Text4 = value.String
			}
		case banner.FieldText5:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field text5", values[i])
			} else if value.Valid {
				_m.Text5 = value.String
			}
		case banner.FieldDetails:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field details", values[i])
			} else if value.Valid {
				_m.Details = value.String
			}
		case banner.FieldAudioGroup:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field audio_group", values[i])
			} else if value.Valid {
				_m.AudioGroup = value.String
			}
		case banner.FieldPlaytimeDuration:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field playtime_duration", values[i])
			} else if value.Valid {
				_m.PlaytimeDuration = int(value.Int64)
			}
		case banner.FieldFlasherDuration:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field flasher_duration", values[i])
			} else if value.Valid {
				_m.FlasherDuration = int(value.Int64)
			}
		case banner.FieldLightSignal:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field light_signal", values[i])
			} else if value.Valid {
				_m.LightSignal = value.String
			}
		case banner.FieldLightDuration:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field light_duration", values[i])
			} else if value.Valid {
				_m.LightDuration = int(value.Int64)
			}
		case banner.FieldAudioTtsGain:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field audio_tts_gain", values[i])
			} else if value.Valid {
				_m.AudioTtsGain = int(value.Int64)
			}
		case banner.FieldFlashNewMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field flash_new_message", values[i])
			} else if value.Valid {
				_m.FlashNewMessage = value.String
			}
		case banner.FieldVisibleTime:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field visible_time", values[i])
			} else if value.Valid {
				_m.VisibleTime = value.String
			}
		case banner.FieldVisibleFrequency:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field visible_frequency", values[i])
			} else if value.Valid {
				_m.VisibleFrequency = value.String
			}
		case banner.FieldVisibleDuration:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field visible_duration", values[i])
			} else if value.Valid {
				_m.VisibleDuration = value.String
			}
		case banner.FieldRecordVoiceAtLaunchSelection:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field record_voice_at_launch_selection", values[i])
			} else if value.Valid {
				_m.RecordVoiceAtLaunchSelection = int(value.Int64)
			}
		case banner.FieldRecordVoiceAtLaunch:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field record_voice_at_launch", values[i])
			} else if value.Valid {
				_m.RecordVoiceAtLaunch = value.String
			}
		case banner.FieldAudioRecordedGain:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field audio_recorded_gain", values[i])
			} else if value.Valid {
				_m.AudioRecordedGain = int(value.Int64)
			}
		case banner.FieldPaDeliveryMode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pa_delivery_mode", values[i])
			} else if value.Valid {
				_m.PaDeliveryMode = value.String
			}
		case banner.FieldAudioRepeat:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field audio_repeat", values[i])
			} else if value.Valid {
				_m.AudioRepeat = value.String
			}
		case banner.FieldSpeed:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field speed", values[i])
			} else if value.Valid {
				_m.Speed = int(value.Int64)
			}
		case banner.FieldPriority:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field priority", values[i])
			} else if value.Valid {
				_m.Priority = int(value.Int64)
			}
		case banner.FieldExpirePriority:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field expire_priority", values[i])
			} else if value.Valid {
				_m.ExpirePriority = int(value.Int64)
			}
		case banner.FieldPriorityDuration:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field priority_duration", values[i])
			} else if value.Valid {
				_m.PriorityDuration = int(value.Int64)
			}
		case banner.FieldPagePriorityAtLaunch:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field page_priority_at_launch", values[i])
			} else if value.Valid {
				_m.PagePriorityAtLaunch = int(value.Int64)
			}
		case banner.FieldMultimediaType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field multimedia_type", values[i])
			} else if value.Valid {
				_m.MultimediaType = value.String
			}
		case banner.FieldMultimediaAudioGain:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field multimedia_audio_gain", values[i])
			} else if value.Valid {
				_m.MultimediaAudioGain = int(value.Int64)
			}
		case banner.FieldWebpageURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field webpage_url", values[i])
			} else if value.Valid {
				_m.WebpageURL = value.String
			}
		case banner.FieldVideoFile:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field video_file", values[i])
			} else if value.Valid {
				_m.VideoFile = value.String
			}
		case banner.FieldShowCamera:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field show_camera", values[i])
			} else if value.Valid {
				_m.ShowCamera = value.String
			}
		case banner.FieldCameraDeviceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field camera_device_id", values[i])
			} else if value.Valid {
				_m.CameraDeviceID = value.String
			}
		case banner.FieldLaunchPin:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field launch_pin", values[i])
			} else if value.Valid {
				_m.LaunchPin = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Banner.
// This includes values selected through modifiers, order, etc.
func (_m *Banner) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Banner.
// Note that you need to call Banner.Unwrap() before calling this method if this Banner
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Banner) Update() *BannerUpdateOne {
	return NewBannerClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Banner entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Banner) Unwrap() *Banner {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Banner is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Banner) String() string {
	var builder strings.Builder
	builder.WriteString("Banner(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("template_recno=")
	builder.WriteString(fmt.Sprintf("%v", _m.TemplateRecno))
	builder.WriteString(", ")
	builder.WriteString("rec_dtsec=")
	builder.WriteString(_m.RecDtsec)
	builder.WriteString(", ")
	builder.WriteString("duration=")
	builder.WriteString(fmt.Sprintf("%v", _m.Duration))
	builder.WriteString(", ")
	builder.WriteString("msgtype=")
	builder.WriteString(_m.Msgtype)
	builder.WriteString(", ")
	builder.WriteString("text1=")
	builder.WriteString(_m.Text1)
	builder.WriteString(", ")
	builder.WriteString("text2=")
	builder.WriteString(_m.Text2)
	builder.WriteString(", ")
	builder.WriteString("text3=")
	builder.WriteString(_m.Text3)
	builder.WriteString(", ")
	builder.WriteString("text4=")
	builder.WriteString(_m.Text4)
	builder.WriteString(", ")
	builder.WriteString("text5=")
	builder.WriteString(_m.Text5)
	builder.WriteString(", ")
	builder.WriteString("details=")
	builder.WriteString(_m.Details)
	builder.WriteString(", ")
	builder.WriteString("audio_group=")
	builder.WriteString(_m.AudioGroup)
	builder.WriteString(", ")
	builder.WriteString("playtime_duration=")
	builder.WriteString(fmt.Sprintf("%v", _m.PlaytimeDuration))
	builder.WriteString(", ")
	builder.WriteString("flasher_duration=")
	builder.WriteString(fmt.Sprintf("%v", _m.FlasherDuration))
	builder.WriteString(", ")
	builder.WriteString("light_signal=")
	builder.WriteString(_m.LightSignal)
	builder.WriteString(", ")
	builder.WriteString("light_duration=")
	builder.WriteString(fmt.Sprintf("%v", _m.LightDuration))
	builder.WriteString(", ")
	builder.WriteString("audio_tts_gain=")
	builder.WriteString(fmt.Sprintf("%v", _m.AudioTtsGain))
	builder.WriteString(", ")
	builder.WriteString("flash_new_message=")
	builder.WriteString(_m.FlashNewMessage)
	builder.WriteString(", ")
	builder.WriteString("visible_time=")
	builder.WriteString(_m.VisibleTime)
	builder.WriteString(", ")
	builder.WriteString("visible_frequency=")
	builder.WriteString(_m.VisibleFrequency)
	builder.WriteString(", ")
	builder.WriteString("visible_duration=")
	builder.WriteString(_m.VisibleDuration)
	builder.WriteString(", ")
	builder.WriteString("record_voice_at_launch_selection=")
	builder.WriteString(fmt.Sprintf("%v", _m.RecordVoiceAtLaunchSelection))
	builder.WriteString(", ")
	builder.WriteString("record_voice_at_launch=")
	builder.WriteString(_m.RecordVoiceAtLaunch)
	builder.WriteString(", ")
	builder.WriteString("audio_recorded_gain=")
	builder.WriteString(fmt.Sprintf("%v", _m.AudioRecordedGain))
	builder.WriteString(", ")
	builder.WriteString("pa_delivery_mode=")
	builder.WriteString(_m.PaDeliveryMode)
	builder.WriteString(", ")
	builder.WriteString("audio_repeat=")
	builder.WriteString(_m.AudioRepeat)
	builder.WriteString(", ")
	builder.WriteString("speed=")
	builder.WriteString(fmt.Sprintf("%v", _m.Speed))
	builder.WriteString(", ")
	builder.WriteString("priority=")
	builder.WriteString(fmt.Sprintf("%v", _m.Priority))
	builder.WriteString(", ")
	builder.WriteString("expire_priority=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExpirePriority))
	builder.WriteString(", ")
	builder.WriteString("priority_duration=")
	builder.WriteString(fmt.Sprintf("%v", _m.PriorityDuration))
	builder.WriteString(", ")
	builder.WriteString("page_priority_at_launch=")
	builder.WriteString(fmt.Sprintf("%v", _m.PagePriorityAtLaunch))
	builder.WriteString(", ")
	builder.WriteString("multimedia_type=")
	builder.WriteString(_m.MultimediaType)
	builder.WriteString(", ")
	builder.WriteString("multimedia_audio_gain=")
	builder.WriteString(fmt.Sprintf("%v", _m.MultimediaAudioGain))
	builder.WriteString(", ")
	builder.WriteString("webpage_url=")
	builder.WriteString(_m.WebpageURL)
	builder.WriteString(", ")
	builder.WriteString("video_file=")
	builder.WriteString(_m.VideoFile)
	builder.WriteString(", ")
	builder.WriteString("show_camera=")
	builder.WriteString(_m.ShowCamera)
	builder.WriteString(", ")
	builder.WriteString("camera_device_id=")
	builder.WriteString(_m.CameraDeviceID)
	builder.WriteString(", ")
	builder.WriteString("launch_pin=")
	builder.WriteString(_m.LaunchPin)
	builder.WriteByte(')')
	return builder.String()
}

// Banners is a parsable slice of Banner.
type Banners []*Banner
