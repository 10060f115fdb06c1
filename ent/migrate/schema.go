// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AudioGroupsColumns holds the columns for the "audio_groups" table.
	AudioGroupsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "device_recnos", Type: field.TypeJSON, Nullable: true},
	}
	// AudioGroupsTable holds the schema information for the "audio_groups" table.
	AudioGroupsTable = &schema.Table{
		Name:       "audio_groups",
		Columns:    AudioGroupsColumns,
		PrimaryKey: []*schema.Column{AudioGroupsColumns[0]},
	}
	// BannersColumns holds the columns for the "banners" table.
	BannersColumns = []*schema.Column{
		{Name: "recno", Type: field.TypeInt, Increment: true},
		{Name: "template_recno", Type: field.TypeInt, Default: 0},
		{Name: "rec_dtsec", Type: field.TypeString, Default: ""},
		{Name: "duration", Type: field.TypeInt, Default: 0},
		{Name: "msgtype", Type: field.TypeString, Default: ""},
		{Name: "text1", Type: field.TypeString, Default: ""},
		{Name: "text2", Type: field.TypeString, Default: ""},
		{Name: "text3", Type: field.TypeString, Default: ""},
		{Name: "text4", Type: field.TypeString, Default: ""},
		{Name: "text5", Type: field.TypeString, Default: ""},
		{Name: "details", Type: field.TypeString, Default: ""},
		{Name: "audio_group", Type: field.TypeString, Default: ""},
		{Name: "playtime_duration", Type: field.TypeInt, Default: 0},
		{Name: "flasher_duration", Type: field.TypeInt, Default: 0},
		{Name: "light_signal", Type: field.TypeString, Default: ""},
		{Name: "light_duration", Type: field.TypeInt, Default: 0},
		{Name: "audio_tts_gain", Type: field.TypeInt, Default: 0},
		{Name: "flash_new_message", Type: field.TypeString, Default: ""},
		{Name: "visible_time", Type: field.TypeString, Default: ""},
		{Name: "visible_frequency", Type: field.TypeString, Default: ""},
		{Name: "visible_duration", Type: field.TypeString, Default: ""},
		{Name: "record_voice_at_launch_selection", Type: field.TypeInt, Default: 0},
		{Name: "record_voice_at_launch", Type: field.TypeString, Default: ""},
		{Name: "audio_recorded_gain", Type: field.TypeInt, Default: 0},
		{Name: "pa_delivery_mode", Type: field.TypeString, Default: ""},
		{Name: "audio_repeat", Type: field.TypeString, Default: ""},
		{Name: "speed", Type: field.TypeInt, Default: 0},
		{Name: "priority", Type: field.TypeInt, Default: 0},
		{Name: "expire_priority", Type: field.TypeInt, Default: 0},
		{Name: "priority_duration", Type: field.TypeInt, Default: 0},
		{Name: "page_priority_at_launch", Type: field.TypeInt, Default: 0},
		{Name: "multimedia_type", Type: field.TypeString, Default: ""},
		{Name: "multimedia_audio_gain", Type: field.TypeInt, Default: 0},
		{Name: "webpage_url", Type: field.TypeString, Default: ""},
		{Name: "video_file", Type: field.TypeString, Default: ""},
		{Name: "show_camera", Type: field.TypeString, Default: ""},
		{Name: "camera_device_id", Type: field.TypeString, Default: ""},
		{Name: "launch_pin", Type: field.TypeString, Default: ""},
	}
	// BannersTable holds the schema information for the "banners" table.
	BannersTable = &schema.Table{
		Name:       "banners",
		Columns:    BannersColumns,
		PrimaryKey: []*schema.Column{BannersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "banner_template_recno",
				Unique:  false,
				Columns: []*schema.Column{BannersColumns[1]},
			},
		},
	}
	// HardwaresColumns holds the columns for the "hardwares" table.
	HardwaresColumns = []*schema.Column{
		{Name: "recno", Type: field.TypeInt, Increment: true},
		{Name: "device_id", Type: field.TypeString, Unique: true},
		{Name: "device_kind", Type: field.TypeEnum, Enums: []string{"transport", "io", "appliance"}},
		{Name: "name", Type: field.TypeString, Nullable: true},
		{Name: "address", Type: field.TypeString, Default: ""},
		{Name: "port", Type: field.TypeInt, Default: 8080},
		{Name: "password", Type: field.TypeString, Default: ""},
		{Name: "auto_address", Type: field.TypeBool, Default: false},
		{Name: "ip_method_config", Type: field.TypeString, Default: ""},
		{Name: "ip_method_current", Type: field.TypeString, Default: ""},
		{Name: "rtsp_port", Type: field.TypeInt, Default: 554},
		{Name: "connection_status", Type: field.TypeEnum, Enums: []string{"active", "closed"}, Default: "closed"},
	}
	// HardwaresTable holds the schema information for the "hardwares" table.
	HardwaresTable = &schema.Table{
		Name:       "hardwares",
		Columns:    HardwaresColumns,
		PrimaryKey: []*schema.Column{HardwaresColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "hardware_device_kind",
				Unique:  false,
				Columns: []*schema.Column{HardwaresColumns[2]},
			},
		},
	}
	// StaffsColumns holds the columns for the "staffs" table.
	StaffsColumns = []*schema.Column{
		{Name: "recno", Type: field.TypeInt, Increment: true},
		{Name: "pin", Type: field.TypeString, Unique: true},
		{Name: "gender", Type: field.TypeString, Default: ""},
		{Name: "name", Type: field.TypeString, Nullable: true},
	}
	// StaffsTable holds the schema information for the "staffs" table.
	StaffsTable = &schema.Table{
		Name:       "staffs",
		Columns:    StaffsColumns,
		PrimaryKey: []*schema.Column{StaffsColumns[0]},
	}
	// TemplatesColumns holds the columns for the "templates" table.
	TemplatesColumns = []*schema.Column{
		{Name: "recno", Type: field.TypeInt, Increment: true},
		{Name: "audio_groups", Type: field.TypeJSON, Nullable: true},
	}
	// TemplatesTable holds the schema information for the "templates" table.
	TemplatesTable = &schema.Table{
		Name:       "templates",
		Columns:    TemplatesColumns,
		PrimaryKey: []*schema.Column{TemplatesColumns[0]},
	}
	// WtcCommandsColumns holds the columns for the "wtc_commands" table.
	WtcCommandsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "command", Type: field.TypeEnum, Enums: []string{"new_message", "stop_message", "clear_sign", "seq_change", "sign_messages", "hardware_update", "appliance_sync"}},
		{Name: "source", Type: field.TypeEnum, Enums: []string{"browser", "banner_board", "banner_msg", "scheduler"}},
		{Name: "destination", Type: field.TypeEnum, Enums: []string{"browser", "banner_board", "banner_msg", "scheduler"}},
		{Name: "pid", Type: field.TypeInt, Default: 0},
		{Name: "hardware_recno", Type: field.TypeInt, Default: 0},
		{Name: "stream_recno", Type: field.TypeInt, Default: 0},
		{Name: "template_recno", Type: field.TypeInt, Default: 0},
		{Name: "sequence", Type: field.TypeString, Default: ""},
		{Name: "message", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "return_node", Type: field.TypeString, Default: ""},
		{Name: "flag", Type: field.TypeInt8, Default: 0},
		{Name: "seq_operation", Type: field.TypeInt8, Default: 0},
		{Name: "message_type", Type: field.TypeInt8, Default: 0},
		{Name: "node_name", Type: field.TypeString, Default: ""},
		{Name: "created_at", Type: field.TypeTime},
	}
	// WtcCommandsTable holds the schema information for the "wtc_commands" table.
	WtcCommandsTable = &schema.Table{
		Name:       "wtc_commands",
		Columns:    WtcCommandsColumns,
		PrimaryKey: []*schema.Column{WtcCommandsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "wtccommand_command_source_destination",
				Unique:  false,
				Columns: []*schema.Column{WtcCommandsColumns[1], WtcCommandsColumns[2], WtcCommandsColumns[3]},
			},
			{
				Name:    "wtccommand_node_name",
				Unique:  false,
				Columns: []*schema.Column{WtcCommandsColumns[14]},
			},
			{
				Name:    "wtccommand_hardware_recno",
				Unique:  false,
				Columns: []*schema.Column{WtcCommandsColumns[5]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AudioGroupsTable,
		BannersTable,
		HardwaresTable,
		StaffsTable,
		TemplatesTable,
		WtcCommandsTable,
	}
)

func init() {
}
