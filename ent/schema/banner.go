package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Banner holds the schema definition for the Banner entity: one row per
// launched message instance (a "stream" record, keyed by its ZX recno).
// The presentation knobs pass through untouched to the appliance JSON;
// single-character flags stay textual the way the launch UI stores them.
type Banner struct {
	ent.Schema
}

// Fields of the Banner.
func (Banner) Fields() []ent.Field {
	return []ent.Field{
		field.Int("id").
			StorageKey("recno").
			Unique().
			Immutable(),
		field.Int("template_recno").
			Default(0),
		field.String("rec_dtsec").
			Default("").
			Comment("Launch timestamp, seconds-resolution string"),
		field.Int("duration").
			Default(0),
		field.String("msgtype").
			Default(""),
		field.String("text1").Default(""),
		field.String("text2").Default(""),
		field.String("text3").Default(""),
		field.String("text4").Default(""),
		field.String("text5").Default(""),
		field.String("details").
			Default(""),
		field.String("audio_group").
			Default("").
			Comment("Single group name, or the literals 'multiple' / 'choose'"),
		field.Int("playtime_duration").Default(0),
		field.Int("flasher_duration").Default(0),
		field.String("light_signal").Default(""),
		field.Int("light_duration").Default(0),
		field.Int("audio_tts_gain").Default(0),
		field.String("flash_new_message").Default(""),
		field.String("visible_time").Default(""),
		field.String("visible_frequency").Default(""),
		field.String("visible_duration").Default(""),
		field.Int("record_voice_at_launch_selection").Default(0),
		field.String("record_voice_at_launch").Default(""),
		field.Int("audio_recorded_gain").Default(0),
		field.String("pa_delivery_mode").Default(""),
		field.String("audio_repeat").Default(""),
		field.Int("speed").Default(0),
		field.Int("priority").Default(0),
		field.Int("expire_priority").Default(0),
		field.Int("priority_duration").Default(0),
		field.Int("page_priority_at_launch").Default(0),
		field.String("multimedia_type").
			Default("").
			Comment("video, webpage, webmedia, locationsdisplay, geolocationsmap, or empty for scrolling text"),
		field.Int("multimedia_audio_gain").Default(0),
		field.String("webpage_url").
			Default("").
			Comment("URL for webpage/webmedia messages"),
		field.String("video_file").
			Default("").
			Comment("Multimedia file path for video messages"),
		field.String("show_camera").
			Default(""),
		field.String("camera_device_id").
			Default(""),
		field.String("launch_pin").
			Default(""),
	}
}

// Indexes of the Banner.
func (Banner) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("template_recno"),
	}
}
