package translate

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/messagenet/bannerd/pkg/models"
)

func testView() *models.BannerView {
	return &models.BannerView{
		Recno:               345,
		TemplateRecno:       305,
		RecDtsec:            "1693526400",
		Duration:            60,
		Msgtype:             "normal",
		Text:                "FIRE DRILL AT 2PM",
		DeviceAudioGroups:   []string{"All Call"},
		BannerAudioGroups:   []string{"Hall A"},
		AudioTtsGain:        2,
		FlashNewMessage:     "n",
		LightSignal:         "0",
		VisibleTime:         "0",
		VisibleFrequency:    "0",
		VisibleDuration:     "0",
		RecordVoiceAtLaunch: "n",
		PaDeliveryMode:      "n",
		AudioRepeat:         "n",
		Speed:               5,
		Priority:            100,
		WebpageURL:          "FALSE",
		LaunchPin:           "1234",
		Gender:              "F",
	}
}

func TestMessageRendersExactWireBody(t *testing.T) {
	got := Message(0, "FIRE DRILL AT 2PM", testView()).Render()

	want := `{"signseqnum":0,` +
		`"dbb_rec_dtsec":"1693526400",` +
		`"recno_zx":"345",` +
		`"recno_template":"305",` +
		`"dbb_duration":60,` +
		`"msgtype":"normal",` +
		`"msgtext":"FIRE DRILL AT 2PM",` +
		`"msgdetails":"",` +
		`"dsi_audio_group_name":["All Call"],` +
		`"dbb_audio_groups":["Hall A"],` +
		`"dbb_playtime_duration":0,` +
		`"dbb_flasher_duration":0,` +
		`"dbb_light_signal":"0",` +
		`"dbb_light_duration":0,` +
		`"dbb_audio_tts_gain":2,` +
		`"dbb_flash_new_message":"n",` +
		`"dbb_visible_time":"0",` +
		`"dbb_visible_frequency":"0",` +
		`"dbb_visible_duration":"0",` +
		`"dbb_record_voice_at_launch_selection":0,` +
		`"dbb_record_voice_at_launch":"n",` +
		`"dbb_audio_recorded_gain":0,` +
		`"dbb_pa_delivery_mode":"n",` +
		`"dbb_audio_repeat":"n",` +
		`"dbb_speed":5,` +
		`"dbb_priority":100,` +
		`"dbb_expire_priority":0,` +
		`"dbb_priority_duration":0,` +
		`"dbb_page_priority_at_launch":0,` +
		`"multimediatype":"",` +
		`"dbb_multimedia_audio_gain":0,` +
		`"webpageurl":"FALSE",` +
		`"dbb_launch_pin":"1234",` +
		`"dss_gender":"F"}`
	assert.Equal(t, want, got)

	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(got), &m))
	assert.Len(t, m, 34)
}

func TestMessageNegativeSeqNum(t *testing.T) {
	got := Message(-1, "x", testView()).Render()
	assert.True(t, strings.HasPrefix(got, `{"signseqnum":-1,`))
}

func TestCompactMessage(t *testing.T) {
	got := CompactMessage(2, 345, "FIRE DRILL").Render()
	assert.Equal(t, `{"signseqnum":2,"recno_zx":"345","msgtext":"FIRE DRILL"}`, got)
}

func TestPurposeFor(t *testing.T) {
	tests := []struct {
		name string
		mod  func(*models.BannerView)
		want string
	}{
		{"scrolling default", func(v *models.BannerView) {}, PurposeNewScrollingMessage},
		{"video", func(v *models.BannerView) { v.MultimediaType = "video" }, PurposeNewVideo},
		{"webpage", func(v *models.BannerView) { v.MultimediaType = "webpage" }, PurposeNewWebpage},
		{"webmedia", func(v *models.BannerView) { v.MultimediaType = "webmedia" }, PurposeNewWebpage},
		{"locations display", func(v *models.BannerView) { v.MultimediaType = "locationsdisplay" }, PurposeNewLocationsDisplay},
		{"geo locations map", func(v *models.BannerView) { v.MultimediaType = "geolocationsmap" }, PurposeNewGeoLocationsMap},
		{"camera override", func(v *models.BannerView) {
			v.ShowCamera = "yes"
			v.CameraDeviceID = "CAM-1"
		}, PurposeNewCameraMessage},
		{"video beats camera", func(v *models.BannerView) {
			v.MultimediaType = "video"
			v.ShowCamera = "yes"
			v.CameraDeviceID = "CAM-1"
		}, PurposeNewVideo},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := testView()
			tt.mod(v)
			assert.Equal(t, tt.want, PurposeFor(v))
		})
	}
}

func TestNewMessageBody(t *testing.T) {
	dev := Device{Recno: 363, DeviceID: "EVO-363", Password: "pw"}
	msg := CompactMessage(0, 345, "x")
	got := NewMessageBody(dev, PurposeNewScrollingMessage, msg)

	want := `{"password":"pw","bannerpurpose":"newscrollingmessage","hardware_deviceid":"EVO-363","hardware_recno":"363",` +
		`"bannermessages":[{"signseqnum":0,"recno_zx":"345","msgtext":"x"}]}`
	assert.Equal(t, want, got)
}

func TestStopMessageBody(t *testing.T) {
	dev := Device{Recno: 363, DeviceID: "EVO-363", Password: "pw"}
	got := StopMessageBody(dev, 345)
	assert.Equal(t, `{"password":"pw","bannerpurpose":"stopscrollingmessage","recno_zx":"345"}`, got)
}

func TestClearSignBody(t *testing.T) {
	dev := Device{Recno: 363, DeviceID: "EVO-363", Password: "pw"}
	assert.Equal(t, `{"password":"pw","bannerpurpose":"clearsign"}`, ClearSignBody(dev))
}

func TestUpdateSeqBody(t *testing.T) {
	dev := Device{Recno: 363, DeviceID: "EVO-363", Password: "pw"}
	msgs := []*Object{
		CompactMessage(0, 345, "a"),
		CompactMessage(1, 350, "b"),
	}
	got := UpdateSeqBody(dev, "AB", msgs)
	want := `{"password":"pw","bannerpurpose":"updateseq","seqstring":"AB",` +
		`"bannermessages":[{"signseqnum":0,"recno_zx":"345","msgtext":"a"},{"signseqnum":1,"recno_zx":"350","msgtext":"b"}]}`
	assert.Equal(t, want, got)
}
