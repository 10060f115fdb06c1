package services

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"slices"
	"strings"

	"github.com/messagenet/bannerd/ent"
	"github.com/messagenet/bannerd/ent/hardware"
	"github.com/messagenet/bannerd/ent/staff"
	"github.com/messagenet/bannerd/pkg/models"
)

// Literal audio_group values with special meaning.
const (
	audioGroupMultiple = "multiple"
	audioGroupChoose   = "choose"
)

// BannerService reads launched-message records and assembles the
// device-relative view the translator consumes.
type BannerService struct {
	client *ent.Client
}

// NewBannerService creates a new BannerService
func NewBannerService(client *ent.Client) *BannerService {
	return &BannerService{client: client}
}

// Get retrieves a banner record by its ZX recno.
func (s *BannerService) Get(ctx context.Context, recno int) (*ent.Banner, error) {
	row, err := s.client.Banner.Get(ctx, recno)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get banner %d: %w", recno, err)
	}
	return row, nil
}

// GetView assembles the full message view for one banner record as seen
// by one target device: audio group memberships, the resolved asset URL,
// and the sender's gender are all bound here so the translator stays
// pure.
func (s *BannerService) GetView(ctx context.Context, bannerRecno, deviceRecno int) (*models.BannerView, error) {
	row, err := s.Get(ctx, bannerRecno)
	if err != nil {
		return nil, err
	}

	deviceGroups, err := s.deviceAudioGroups(ctx, deviceRecno)
	if err != nil {
		return nil, err
	}
	bannerGroups, err := s.bannerAudioGroups(ctx, row)
	if err != nil {
		return nil, err
	}
	webpageURL, err := s.resolveURL(ctx, row)
	if err != nil {
		return nil, err
	}

	return &models.BannerView{
		Recno:                        row.ID,
		TemplateRecno:                row.TemplateRecno,
		RecDtsec:                     row.RecDtsec,
		Duration:                     row.Duration,
		Msgtype:                      row.Msgtype,
		Text:                         row.Text1 + row.Text2 + row.Text3 + row.Text4 + row.Text5,
		Details:                      row.Details,
		DeviceAudioGroups:            deviceGroups,
		BannerAudioGroups:            bannerGroups,
		PlaytimeDuration:             row.PlaytimeDuration,
		FlasherDuration:              row.FlasherDuration,
		LightSignal:                  row.LightSignal,
		LightDuration:                row.LightDuration,
		AudioTtsGain:                 row.AudioTtsGain,
		FlashNewMessage:              row.FlashNewMessage,
		VisibleTime:                  row.VisibleTime,
		VisibleFrequency:             row.VisibleFrequency,
		VisibleDuration:              row.VisibleDuration,
		RecordVoiceAtLaunchSelection: row.RecordVoiceAtLaunchSelection,
		RecordVoiceAtLaunch:          row.RecordVoiceAtLaunch,
		AudioRecordedGain:            row.AudioRecordedGain,
		PaDeliveryMode:               row.PaDeliveryMode,
		AudioRepeat:                  row.AudioRepeat,
		Speed:                        row.Speed,
		Priority:                     row.Priority,
		ExpirePriority:               row.ExpirePriority,
		PriorityDuration:             row.PriorityDuration,
		PagePriorityAtLaunch:         row.PagePriorityAtLaunch,
		MultimediaType:               row.MultimediaType,
		MultimediaAudioGain:          row.MultimediaAudioGain,
		WebpageURL:                   webpageURL,
		LaunchPin:                    row.LaunchPin,
		Gender:                       s.senderGender(ctx, row.LaunchPin),
		ShowCamera:                   row.ShowCamera,
		CameraDeviceID:               row.CameraDeviceID,
	}, nil
}

// deviceAudioGroups lists every audio group containing the device.
func (s *BannerService) deviceAudioGroups(ctx context.Context, deviceRecno int) ([]string, error) {
	groups, err := s.client.AudioGroup.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query audio groups: %w", err)
	}
	var out []string
	for _, g := range groups {
		if slices.Contains(g.DeviceRecnos, deviceRecno) {
			out = append(out, g.Name)
		}
	}
	return out, nil
}

// bannerAudioGroups resolves the message's audio_group field: a literal
// group name, "multiple" (listed on the template's options record), or
// "choose" (picked at launch — resolution of the chosen list is not
// supported; the list comes back empty).
func (s *BannerService) bannerAudioGroups(ctx context.Context, row *ent.Banner) ([]string, error) {
	switch strings.TrimSpace(row.AudioGroup) {
	case audioGroupMultiple:
		tpl, err := s.client.Template.Get(ctx, row.TemplateRecno)
		if err != nil {
			if ent.IsNotFound(err) {
				return nil, nil
			}
			return nil, fmt.Errorf("failed to get template %d: %w", row.TemplateRecno, err)
		}
		return tpl.AudioGroups, nil
	case audioGroupChoose:
		// Chosen-at-launch group resolution is an unsupported path.
		slog.Debug("Audio group resolution for chosen groups is unsupported",
			"banner_recno", row.ID)
		return nil, nil
	case "":
		return nil, nil
	default:
		return []string{strings.TrimSpace(row.AudioGroup)}, nil
	}
}

// resolveURL produces the webpageurl field: a URL for webpage/webmedia,
// the file name for video, the camera's RTSP URL for camera messages,
// "NULL" when a lookup fails, and "FALSE" when no URL applies.
func (s *BannerService) resolveURL(ctx context.Context, row *ent.Banner) (string, error) {
	switch row.MultimediaType {
	case "webpage", "webmedia":
		if row.WebpageURL == "" {
			return "NULL", nil
		}
		return row.WebpageURL, nil
	case "video":
		if row.VideoFile == "" {
			return "NULL", nil
		}
		return path.Base(row.VideoFile), nil
	}
	if row.ShowCamera == "yes" && row.CameraDeviceID != "" {
		return s.cameraStreamURL(ctx, row.CameraDeviceID)
	}
	return "FALSE", nil
}

// cameraStreamURL finds the camera's hardware record and builds its
// RTSP stream URL.
func (s *BannerService) cameraStreamURL(ctx context.Context, cameraDeviceID string) (string, error) {
	cam, err := s.client.Hardware.Query().
		Where(hardware.DeviceIDEQ(cameraDeviceID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return "NULL", nil
		}
		return "", fmt.Errorf("failed to find camera %q: %w", cameraDeviceID, err)
	}
	return fmt.Sprintf("rtsp://%s:%d/evolution", cam.Address, cam.RtspPort), nil
}

// senderGender resolves the launcher's gender from the launch PIN; empty
// when the PIN does not match a staff record.
func (s *BannerService) senderGender(ctx context.Context, pin string) string {
	if strings.TrimSpace(pin) == "" {
		return ""
	}
	row, err := s.client.Staff.Query().
		Where(staff.PinEQ(pin)).
		Only(ctx)
	if err != nil {
		return ""
	}
	return row.Gender
}
