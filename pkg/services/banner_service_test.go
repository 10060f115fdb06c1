package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/messagenet/bannerd/ent"
	"github.com/messagenet/bannerd/ent/hardware"
	"github.com/messagenet/bannerd/pkg/services"
	util "github.com/messagenet/bannerd/test/util"
)

func seedBanner(t *testing.T, client *ent.Client, recno int) *ent.BannerCreate {
	t.Helper()
	return client.Banner.Create().
		SetID(recno).
		SetTemplateRecno(305).
		SetRecDtsec("1693526400")
}

func TestBannerGet(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := services.NewBannerService(client)
	ctx := context.Background()

	_, err := seedBanner(t, client, 345).SetText1("FIRE DRILL").Save(ctx)
	require.NoError(t, err)

	row, err := svc.Get(ctx, 345)
	require.NoError(t, err)
	assert.Equal(t, "FIRE DRILL", row.Text1)

	_, err = svc.Get(ctx, 999)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestGetViewConcatenatesText(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := services.NewBannerService(client)
	ctx := context.Background()

	_, err := seedBanner(t, client, 345).
		SetText1("AB").SetText2("CD").SetText4("EF").
		Save(ctx)
	require.NoError(t, err)

	view, err := svc.GetView(ctx, 345, 363)
	require.NoError(t, err)
	assert.Equal(t, 345, view.Recno)
	assert.Equal(t, 305, view.TemplateRecno)
	assert.Equal(t, "1693526400", view.RecDtsec)
	assert.Equal(t, "ABCDEF", view.Text)
	assert.Equal(t, "FALSE", view.WebpageURL)
}

func TestGetViewNotFound(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := services.NewBannerService(client)

	_, err := svc.GetView(context.Background(), 999, 363)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestGetViewDeviceAudioGroups(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := services.NewBannerService(client)
	ctx := context.Background()

	_, err := client.AudioGroup.Create().
		SetName("hallways").SetDeviceRecnos([]int{363, 364}).Save(ctx)
	require.NoError(t, err)
	_, err = client.AudioGroup.Create().
		SetName("gym").SetDeviceRecnos([]int{400}).Save(ctx)
	require.NoError(t, err)

	_, err = seedBanner(t, client, 345).Save(ctx)
	require.NoError(t, err)

	view, err := svc.GetView(ctx, 345, 363)
	require.NoError(t, err)
	assert.Equal(t, []string{"hallways"}, view.DeviceAudioGroups)
}

func TestGetViewBannerAudioGroups(t *testing.T) {
	ctx := context.Background()

	t.Run("literal group name", func(t *testing.T) {
		client, _ := util.SetupTestDatabase(t)
		svc := services.NewBannerService(client)

		_, err := seedBanner(t, client, 345).SetAudioGroup(" hallways ").Save(ctx)
		require.NoError(t, err)

		view, err := svc.GetView(ctx, 345, 363)
		require.NoError(t, err)
		assert.Equal(t, []string{"hallways"}, view.BannerAudioGroups)
	})

	t.Run("multiple resolves from template", func(t *testing.T) {
		client, _ := util.SetupTestDatabase(t)
		svc := services.NewBannerService(client)

		_, err := client.Template.Create().
			SetID(305).SetAudioGroups([]string{"hallways", "gym"}).Save(ctx)
		require.NoError(t, err)
		_, err = seedBanner(t, client, 345).SetAudioGroup("multiple").Save(ctx)
		require.NoError(t, err)

		view, err := svc.GetView(ctx, 345, 363)
		require.NoError(t, err)
		assert.Equal(t, []string{"hallways", "gym"}, view.BannerAudioGroups)
	})

	t.Run("multiple with missing template is empty", func(t *testing.T) {
		client, _ := util.SetupTestDatabase(t)
		svc := services.NewBannerService(client)

		_, err := seedBanner(t, client, 345).SetAudioGroup("multiple").Save(ctx)
		require.NoError(t, err)

		view, err := svc.GetView(ctx, 345, 363)
		require.NoError(t, err)
		assert.Nil(t, view.BannerAudioGroups)
	})

	t.Run("choose is unsupported and empty", func(t *testing.T) {
		client, _ := util.SetupTestDatabase(t)
		svc := services.NewBannerService(client)

		_, err := seedBanner(t, client, 345).SetAudioGroup("choose").Save(ctx)
		require.NoError(t, err)

		view, err := svc.GetView(ctx, 345, 363)
		require.NoError(t, err)
		assert.Nil(t, view.BannerAudioGroups)
	})
}

func TestGetViewResolveURL(t *testing.T) {
	ctx := context.Background()

	t.Run("webpage", func(t *testing.T) {
		client, _ := util.SetupTestDatabase(t)
		svc := services.NewBannerService(client)

		_, err := seedBanner(t, client, 345).
			SetMultimediaType("webpage").
			SetWebpageURL("http://example.com/page").
			Save(ctx)
		require.NoError(t, err)

		view, err := svc.GetView(ctx, 345, 363)
		require.NoError(t, err)
		assert.Equal(t, "http://example.com/page", view.WebpageURL)
	})

	t.Run("webpage without url is NULL", func(t *testing.T) {
		client, _ := util.SetupTestDatabase(t)
		svc := services.NewBannerService(client)

		_, err := seedBanner(t, client, 345).SetMultimediaType("webpage").Save(ctx)
		require.NoError(t, err)

		view, err := svc.GetView(ctx, 345, 363)
		require.NoError(t, err)
		assert.Equal(t, "NULL", view.WebpageURL)
	})

	t.Run("video uses base file name", func(t *testing.T) {
		client, _ := util.SetupTestDatabase(t)
		svc := services.NewBannerService(client)

		_, err := seedBanner(t, client, 345).
			SetMultimediaType("video").
			SetVideoFile("/data/multimedia/drill.mp4").
			Save(ctx)
		require.NoError(t, err)

		view, err := svc.GetView(ctx, 345, 363)
		require.NoError(t, err)
		assert.Equal(t, "drill.mp4", view.WebpageURL)
	})

	t.Run("camera builds rtsp url", func(t *testing.T) {
		client, _ := util.SetupTestDatabase(t)
		svc := services.NewBannerService(client)

		_, err := client.Hardware.Create().
			SetID(500).
			SetDeviceID("CAM-500").
			SetDeviceKind(hardware.DeviceKindIo).
			SetAddress("192.168.1.50").
			SetRtspPort(8554).
			Save(ctx)
		require.NoError(t, err)

		_, err = seedBanner(t, client, 345).
			SetShowCamera("yes").
			SetCameraDeviceID("CAM-500").
			Save(ctx)
		require.NoError(t, err)

		view, err := svc.GetView(ctx, 345, 363)
		require.NoError(t, err)
		assert.Equal(t, "rtsp://192.168.1.50:8554/evolution", view.WebpageURL)
	})

	t.Run("unknown camera is NULL", func(t *testing.T) {
		client, _ := util.SetupTestDatabase(t)
		svc := services.NewBannerService(client)

		_, err := seedBanner(t, client, 345).
			SetShowCamera("yes").
			SetCameraDeviceID("CAM-999").
			Save(ctx)
		require.NoError(t, err)

		view, err := svc.GetView(ctx, 345, 363)
		require.NoError(t, err)
		assert.Equal(t, "NULL", view.WebpageURL)
	})

	t.Run("plain scrolling text is FALSE", func(t *testing.T) {
		client, _ := util.SetupTestDatabase(t)
		svc := services.NewBannerService(client)

		_, err := seedBanner(t, client, 345).Save(ctx)
		require.NoError(t, err)

		view, err := svc.GetView(ctx, 345, 363)
		require.NoError(t, err)
		assert.Equal(t, "FALSE", view.WebpageURL)
	})
}

func TestGetViewSenderGender(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := services.NewBannerService(client)
	ctx := context.Background()

	_, err := client.Staff.Create().
		SetID(7).SetPin("4321").SetGender("female").Save(ctx)
	require.NoError(t, err)

	_, err = seedBanner(t, client, 345).SetLaunchPin("4321").Save(ctx)
	require.NoError(t, err)
	_, err = seedBanner(t, client, 346).SetLaunchPin("0000").Save(ctx)
	require.NoError(t, err)

	view, err := svc.GetView(ctx, 345, 363)
	require.NoError(t, err)
	assert.Equal(t, "female", view.Gender)

	// Unmatched PIN resolves to empty, not an error.
	view, err = svc.GetView(ctx, 346, 363)
	require.NoError(t, err)
	assert.Empty(t, view.Gender)
}
