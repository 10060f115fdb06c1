// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/messagenet/bannerd/ent/banner"
	"github.com/messagenet/bannerd/ent/hardware"
	"github.com/messagenet/bannerd/ent/schema"
	"github.com/messagenet/bannerd/ent/staff"
	"github.com/messagenet/bannerd/ent/wtccommand"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	bannerFields := schema.Banner{}.Fields()
	_ = bannerFields
	// bannerDescTemplateRecno is the schema descriptor for template_recno field.
	bannerDescTemplateRecno := bannerFields[1].Descriptor()
	// banner.DefaultTemplateRecno holds the default value on creation for the template_recno field.
	banner.DefaultTemplateRecno = bannerDescTemplateRecno.Default.(int)
	// bannerDescRecDtsec is the schema descriptor for rec_dtsec field.
	bannerDescRecDtsec := bannerFields[2].Descriptor()
	// banner.DefaultRecDtsec holds the default value on creation for the rec_dtsec field.
	banner.DefaultRecDtsec = bannerDescRecDtsec.Default.(string)
	// bannerDescDuration is the schema descriptor for duration field.
	bannerDescDuration := bannerFields[3].Descriptor()
	// banner.DefaultDuration holds the default value on creation for the duration field.
	banner.DefaultDuration = bannerDescDuration.Default.(int)
	// bannerDescMsgtype is the schema descriptor for msgtype field.
	bannerDescMsgtype := bannerFields[4].Descriptor()
	// banner.DefaultMsgtype holds the default value on creation for the msgtype field.
	banner.DefaultMsgtype = bannerDescMsgtype.Default.(string)
	// bannerDescText1 is the schema descriptor for text1 field.
	bannerDescText1 := bannerFields[5].Descriptor()
	// banner.DefaultText1 holds the default value on creation for the text1 field.
	banner.DefaultText1 = bannerDescText1.Default.(string)
	// bannerDescText2 is the schema descriptor for text2 field.
	bannerDescText2 := bannerFields[6].Descriptor()
	// banner.DefaultText2 holds the default value on creation for the text2 field.
	banner.DefaultText2 = bannerDescText2.Default.(string)
	// bannerDescText3 is the schema descriptor for text3 field.
	bannerDescText3 := bannerFields[7].Descriptor()
	// banner.DefaultText3 holds the default value on creation for the text3 field.
	banner.DefaultText3 = bannerDescText3.Default.(string)
	// bannerDescText4 is the schema descriptor for text4 field.
	bannerDescText4 := bannerFields[8].Descriptor()
	// banner.DefaultText4 holds the default value on creation for the text4 field.
	banner.DefaultText4 = bannerDescText4.Default.(string)
	// bannerDescText5 is the schema descriptor for text5 field.
	bannerDescText5 := bannerFields[9].Descriptor()
	// banner.DefaultText5 holds the default value on creation for the text5 field.
	banner.DefaultText5 = bannerDescText5.Default.(string)
	// bannerDescDetails is the schema descriptor for details field.
	bannerDescDetails := bannerFields[10].Descriptor()
	// banner.DefaultDetails holds the default value on creation for the details field.
	banner.DefaultDetails = bannerDescDetails.Default.(string)
	// bannerDescAudioGroup is the schema descriptor for audio_group field.
	bannerDescAudioGroup := bannerFields[11].Descriptor()
	// banner.DefaultAudioGroup holds the default value on creation for the audio_group field.
	banner.DefaultAudioGroup = bannerDescAudioGroup.Default.(string)
	// bannerDescPlaytimeDuration is the schema descriptor for playtime_duration field.
	bannerDescPlaytimeDuration := bannerFields[12].Descriptor()
	// banner.DefaultPlaytimeDuration holds the default value on creation for the playtime_duration field.
	banner.DefaultPlaytimeDuration = bannerDescPlaytimeDuration.Default.(int)
	// bannerDescFlasherDuration is the schema descriptor for flasher_duration field.
	bannerDescFlasherDuration := bannerFields[13].Descriptor()
	// banner.DefaultFlasherDuration holds the default value on creation for the flasher_duration field.
	banner.DefaultFlasherDuration = bannerDescFlasherDuration.Default.(int)
	// bannerDescLightSignal is the schema descriptor for light_signal field.
	bannerDescLightSignal := bannerFields[14].Descriptor()
	// banner.DefaultLightSignal holds the default value on creation for the light_signal field.
	banner.DefaultLightSignal = bannerDescLightSignal.Default.(string)
	// bannerDescLightDuration is the schema descriptor for light_duration field.
	bannerDescLightDuration := bannerFields[15].Descriptor()
	// banner.DefaultLightDuration holds the default value on creation for the light_duration field.
	banner.DefaultLightDuration = bannerDescLightDuration.Default.(int)
	// bannerDescAudioTtsGain is the schema descriptor for audio_tts_gain field.
	bannerDescAudioTtsGain := bannerFields[16].Descriptor()
	// banner.DefaultAudioTtsGain holds the default value on creation for the audio_tts_gain field.
	banner.DefaultAudioTtsGain = bannerDescAudioTtsGain.Default.(int)
	// bannerDescFlashNewMessage is the schema descriptor for flash_new_message field.
	bannerDescFlashNewMessage := bannerFields[17].Descriptor()
	// banner.DefaultFlashNewMessage holds the default value on creation for the flash_new_message field.
	banner.DefaultFlashNewMessage = bannerDescFlashNewMessage.Default.(string)
	// bannerDescVisibleTime is the schema descriptor for visible_time field.
	bannerDescVisibleTime := bannerFields[18].Descriptor()
	// banner.DefaultVisibleTime holds the default value on creation for the visible_time field.
	banner.DefaultVisibleTime = bannerDescVisibleTime.Default.(string)
	// bannerDescVisibleFrequency is the schema descriptor for visible_frequency field.
	bannerDescVisibleFrequency := bannerFields[19].Descriptor()
	// banner.DefaultVisibleFrequency holds the default value on creation for the visible_frequency field.
	banner.DefaultVisibleFrequency = bannerDescVisibleFrequency.Default.(string)
	// bannerDescVisibleDuration is the schema descriptor for visible_duration field.
	bannerDescVisibleDuration := bannerFields[20].Descriptor()
	// banner.DefaultVisibleDuration holds the default value on creation for the visible_duration field.
	banner.DefaultVisibleDuration = bannerDescVisibleDuration.Default.(string)
	// bannerDescRecordVoiceAtLaunchSelection is the schema descriptor for record_voice_at_launch_selection field.
	bannerDescRecordVoiceAtLaunchSelection := bannerFields[21].Descriptor()
	// banner.DefaultRecordVoiceAtLaunchSelection holds the default value on creation for the record_voice_at_launch_selection field.
	banner.DefaultRecordVoiceAtLaunchSelection = bannerDescRecordVoiceAtLaunchSelection.Default.(int)
	// bannerDescRecordVoiceAtLaunch is the schema descriptor for record_voice_at_launch field.
	bannerDescRecordVoiceAtLaunch := bannerFields[22].Descriptor()
	// banner.DefaultRecordVoiceAtLaunch holds the default value on creation for the record_voice_at_launch field.
	banner.DefaultRecordVoiceAtLaunch = bannerDescRecordVoiceAtLaunch.Default.(string)
	// bannerDescAudioRecordedGain is the schema descriptor for audio_recorded_gain field.
	bannerDescAudioRecordedGain := bannerFields[23].Descriptor()
	// banner.DefaultAudioRecordedGain holds the default value on creation for the audio_recorded_gain field.
	banner.DefaultAudioRecordedGain = bannerDescAudioRecordedGain.Default.(int)
	// bannerDescPaDeliveryMode is the schema descriptor for pa_delivery_mode field.
	bannerDescPaDeliveryMode := bannerFields[24].Descriptor()
	// banner.DefaultPaDeliveryMode holds the default value on creation for the pa_delivery_mode field.
	banner.DefaultPaDeliveryMode = bannerDescPaDeliveryMode.Default.(string)
	// bannerDescAudioRepeat is the schema descriptor for audio_repeat field.
	bannerDescAudioRepeat := bannerFields[25].Descriptor()
	// banner.DefaultAudioRepeat holds the default value on creation for the audio_repeat field.
	banner.DefaultAudioRepeat = bannerDescAudioRepeat.Default.(string)
	// bannerDescSpeed is the schema descriptor for speed field.
	bannerDescSpeed := bannerFields[26].Descriptor()
	// banner.DefaultSpeed holds the default value on creation for the speed field.
	banner.DefaultSpeed = bannerDescSpeed.Default.(int)
	// bannerDescPriority is the schema descriptor for priority field.
	bannerDescPriority := bannerFields[27].Descriptor()
	// banner.DefaultPriority holds the default value on creation for the priority field.
	banner.DefaultPriority = bannerDescPriority.Default.(int)
	// bannerDescExpirePriority is the schema descriptor for expire_priority field.
	bannerDescExpirePriority := bannerFields[28].Descriptor()
	// banner.DefaultExpirePriority holds the default value on creation for the expire_priority field.
	banner.DefaultExpirePriority = bannerDescExpirePriority.Default.(int)
	// bannerDescPriorityDuration is the schema descriptor for priority_duration field.
	bannerDescPriorityDuration := bannerFields[29].Descriptor()
	// banner.DefaultPriorityDuration holds the default value on creation for the priority_duration field.
	banner.DefaultPriorityDuration = bannerDescPriorityDuration.Default.(int)
	// bannerDescPagePriorityAtLaunch is the schema descriptor for page_priority_at_launch field.
	bannerDescPagePriorityAtLaunch := bannerFields[30].Descriptor()
	// banner.DefaultPagePriorityAtLaunch holds the default value on creation for the page_priority_at_launch field.
	banner.DefaultPagePriorityAtLaunch = bannerDescPagePriorityAtLaunch.Default.(int)
	// bannerDescMultimediaType is the schema descriptor for multimedia_type field.
	bannerDescMultimediaType := bannerFields[31].Descriptor()
	// banner.DefaultMultimediaType holds the default value on creation for the multimedia_type field.
	banner.DefaultMultimediaType = bannerDescMultimediaType.Default.(string)
	// bannerDescMultimediaAudioGain is the schema descriptor for multimedia_audio_gain field.
	bannerDescMultimediaAudioGain := bannerFields[32].Descriptor()
	// banner.DefaultMultimediaAudioGain holds the default value on creation for the multimedia_audio_gain field.
	banner.DefaultMultimediaAudioGain = bannerDescMultimediaAudioGain.Default.(int)
	// bannerDescWebpageURL is the schema descriptor for webpage_url field.
	bannerDescWebpageURL := bannerFields[33].Descriptor()
	// banner.DefaultWebpageURL holds the default value on creation for the webpage_url field.
	banner.DefaultWebpageURL = bannerDescWebpageURL.Default.(string)
	// bannerDescVideoFile is the schema descriptor for video_file field.
	bannerDescVideoFile := bannerFields[34].Descriptor()
	// banner.DefaultVideoFile holds the default value on creation for the video_file field.
	banner.DefaultVideoFile = bannerDescVideoFile.Default.(string)
	// bannerDescShowCamera is the schema descriptor for show_camera field.
	bannerDescShowCamera := bannerFields[35].Descriptor()
	// banner.DefaultShowCamera holds the default value on creation for the show_camera field.
	banner.DefaultShowCamera = bannerDescShowCamera.Default.(string)
	// bannerDescCameraDeviceID is the schema descriptor for camera_device_id field.
	bannerDescCameraDeviceID := bannerFields[36].Descriptor()
	// banner.DefaultCameraDeviceID holds the default value on creation for the camera_device_id field.
	banner.DefaultCameraDeviceID = bannerDescCameraDeviceID.Default.(string)
	// bannerDescLaunchPin is the schema descriptor for launch_pin field.
	bannerDescLaunchPin := bannerFields[37].Descriptor()
	// banner.DefaultLaunchPin holds the default value on creation for the launch_pin field.
	banner.DefaultLaunchPin = bannerDescLaunchPin.Default.(string)
	hardwareFields := schema.Hardware{}.Fields()
	_ = hardwareFields
	// hardwareDescAddress is the schema descriptor for address field.
	hardwareDescAddress := hardwareFields[4].Descriptor()
	// hardware.DefaultAddress holds the default value on creation for the address field.
	hardware.DefaultAddress = hardwareDescAddress.Default.(string)
	// hardwareDescPort is the schema descriptor for port field.
	hardwareDescPort := hardwareFields[5].Descriptor()
	// hardware.DefaultPort holds the default value on creation for the port field.
	hardware.DefaultPort = hardwareDescPort.Default.(int)
	// hardwareDescPassword is the schema descriptor for password field.
	hardwareDescPassword := hardwareFields[6].Descriptor()
	// hardware.DefaultPassword holds the default value on creation for the password field.
	hardware.DefaultPassword = hardwareDescPassword.Default.(string)
	// hardwareDescAutoAddress is the schema descriptor for auto_address field.
	hardwareDescAutoAddress := hardwareFields[7].Descriptor()
	// hardware.DefaultAutoAddress holds the default value on creation for the auto_address field.
	hardware.DefaultAutoAddress = hardwareDescAutoAddress.Default.(bool)
	// hardwareDescIPMethodConfig is the schema descriptor for ip_method_config field.
	hardwareDescIPMethodConfig := hardwareFields[8].Descriptor()
	// hardware.DefaultIPMethodConfig holds the default value on creation for the ip_method_config field.
	hardware.DefaultIPMethodConfig = hardwareDescIPMethodConfig.Default.(string)
	// hardwareDescIPMethodCurrent is the schema descriptor for ip_method_current field.
	hardwareDescIPMethodCurrent := hardwareFields[9].Descriptor()
	// hardware.DefaultIPMethodCurrent holds the default value on creation for the ip_method_current field.
	hardware.DefaultIPMethodCurrent = hardwareDescIPMethodCurrent.Default.(string)
	// hardwareDescRtspPort is the schema descriptor for rtsp_port field.
	hardwareDescRtspPort := hardwareFields[10].Descriptor()
	// hardware.DefaultRtspPort holds the default value on creation for the rtsp_port field.
	hardware.DefaultRtspPort = hardwareDescRtspPort.Default.(int)
	staffFields := schema.Staff{}.Fields()
	_ = staffFields
	// staffDescGender is the schema descriptor for gender field.
	staffDescGender := staffFields[2].Descriptor()
	// staff.DefaultGender holds the default value on creation for the gender field.
	staff.DefaultGender = staffDescGender.Default.(string)
	wtccommandFields := schema.WtcCommand{}.Fields()
	_ = wtccommandFields
	// wtccommandDescPid is the schema descriptor for pid field.
	wtccommandDescPid := wtccommandFields[3].Descriptor()
	// wtccommand.DefaultPid holds the default value on creation for the pid field.
	wtccommand.DefaultPid = wtccommandDescPid.Default.(int)
	// wtccommandDescHardwareRecno is the schema descriptor for hardware_recno field.
	wtccommandDescHardwareRecno := wtccommandFields[4].Descriptor()
	// wtccommand.DefaultHardwareRecno holds the default value on creation for the hardware_recno field.
	wtccommand.DefaultHardwareRecno = wtccommandDescHardwareRecno.Default.(int)
	// wtccommandDescStreamRecno is the schema descriptor for stream_recno field.
	wtccommandDescStreamRecno := wtccommandFields[5].Descriptor()
	// wtccommand.DefaultStreamRecno holds the default value on creation for the stream_recno field.
	wtccommand.DefaultStreamRecno = wtccommandDescStreamRecno.Default.(int)
	// wtccommandDescTemplateRecno is the schema descriptor for template_recno field.
	wtccommandDescTemplateRecno := wtccommandFields[6].Descriptor()
	// wtccommand.DefaultTemplateRecno holds the default value on creation for the template_recno field.
	wtccommand.DefaultTemplateRecno = wtccommandDescTemplateRecno.Default.(int)
	// wtccommandDescSequence is the schema descriptor for sequence field.
	wtccommandDescSequence := wtccommandFields[7].Descriptor()
	// wtccommand.DefaultSequence holds the default value on creation for the sequence field.
	wtccommand.DefaultSequence = wtccommandDescSequence.Default.(string)
	// wtccommandDescMessage is the schema descriptor for message field.
	wtccommandDescMessage := wtccommandFields[8].Descriptor()
	// wtccommand.DefaultMessage holds the default value on creation for the message field.
	wtccommand.DefaultMessage = wtccommandDescMessage.Default.(string)
	// wtccommandDescReturnNode is the schema descriptor for return_node field.
	wtccommandDescReturnNode := wtccommandFields[9].Descriptor()
	// wtccommand.DefaultReturnNode holds the default value on creation for the return_node field.
	wtccommand.DefaultReturnNode = wtccommandDescReturnNode.Default.(string)
	// wtccommandDescFlag is the schema descriptor for flag field.
	wtccommandDescFlag := wtccommandFields[10].Descriptor()
	// wtccommand.DefaultFlag holds the default value on creation for the flag field.
	wtccommand.DefaultFlag = wtccommandDescFlag.Default.(int8)
	// wtccommandDescSeqOperation is the schema descriptor for seq_operation field.
	wtccommandDescSeqOperation := wtccommandFields[11].Descriptor()
	// wtccommand.DefaultSeqOperation holds the default value on creation for the seq_operation field.
	wtccommand.DefaultSeqOperation = wtccommandDescSeqOperation.Default.(int8)
	// wtccommandDescMessageType is the schema descriptor for message_type field.
	wtccommandDescMessageType := wtccommandFields[12].Descriptor()
	// wtccommand.DefaultMessageType holds the default value on creation for the message_type field.
	wtccommand.DefaultMessageType = wtccommandDescMessageType.Default.(int8)
	// wtccommandDescNodeName is the schema descriptor for node_name field.
	wtccommandDescNodeName := wtccommandFields[13].Descriptor()
	// wtccommand.DefaultNodeName holds the default value on creation for the node_name field.
	wtccommand.DefaultNodeName = wtccommandDescNodeName.Default.(string)
	// wtccommandDescCreatedAt is the schema descriptor for created_at field.
	wtccommandDescCreatedAt := wtccommandFields[14].Descriptor()
	// wtccommand.DefaultCreatedAt holds the default value on creation for the created_at field.
	wtccommand.DefaultCreatedAt = wtccommandDescCreatedAt.Default.(func() time.Time)
}
