package ui

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/media-downloader/internal/download"
	"github.com/ytget/media-downloader/internal/model"
)

// fakeDownloader records Start calls and tracks the pause toggle
type fakeDownloader struct {
	mu          sync.Mutex
	started     []model.DownloadRequest
	downloading bool
	paused      bool
	startErr    error
	updates     chan model.Update
}

func newFakeDownloader() *fakeDownloader {
	return &fakeDownloader{updates: make(chan model.Update, 8)}
}

func (f *fakeDownloader) Start(ctx context.Context, req model.DownloadRequest) (*model.Attempt, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.startErr != nil {
		return nil, f.startErr
	}
	f.started = append(f.started, req)
	f.downloading = true
	return model.NewAttempt(req), nil
}

func (f *fakeDownloader) Updates() <-chan model.Update { return f.updates }

func (f *fakeDownloader) TogglePause() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.paused = !f.paused
	return f.paused
}

func (f *fakeDownloader) Downloading() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.downloading
}

func (f *fakeDownloader) Paused() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.paused
}

func (f *fakeDownloader) startCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.started)
}

type notice struct {
	kind    NoticeKind
	message string
}

// noticeRecorder captures notifications instead of showing dialogs
type noticeRecorder struct {
	mu      sync.Mutex
	notices []notice
}

func (r *noticeRecorder) notify(kind NoticeKind, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notices = append(r.notices, notice{kind: kind, message: message})
}

func (r *noticeRecorder) all() []notice {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]notice(nil), r.notices...)
}

func newTestUI(t *testing.T, svc download.Downloader) (*RootUI, *noticeRecorder) {
	t.Helper()

	a := test.NewApp()
	t.Cleanup(a.Quit)
	a.Preferences().SetString("app_language", "en")

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	w := a.NewWindow("")
	ui := NewRootUI(ctx, w, a, svc, nil)

	rec := &noticeRecorder{}
	ui.notify = rec.notify
	ui.openFolder = func(string) error { return nil }
	return ui, rec
}

func TestRootUI_InitialState(t *testing.T) {
	ui, _ := newTestUI(t, newFakeDownloader())

	assert.True(t, ui.videoCheck.Checked)
	assert.True(t, ui.audioCheck.Checked)
	assert.True(t, ui.pauseBtn.Disabled())
	assert.Equal(t, "Progress: 0%", ui.progressLabel.Text)
	assert.Equal(t, "No folder selected", ui.outputLabel.Text)
	assert.Equal(t, ProgressMax, ui.progressBar.Max)
}

func TestRootUI_ValidationNotices(t *testing.T) {
	tests := []struct {
		name        string
		url         string
		dir         string
		video       bool
		audio       bool
		downloading bool
		kind        NoticeKind
		message     string
	}{
		{"missing url", "   ", "/tmp", true, true, false, NoticeWarning, "Please enter a video URL"},
		{"missing url wins over busy", "", "", false, false, true, NoticeWarning, "Please enter a video URL"},
		{"missing folder", "https://example.com/v", "", true, true, true, NoticeWarning, "Please choose an output folder"},
		{"already downloading", "https://example.com/v", "/tmp", false, false, true, NoticeInfo, "A download is in progress, please wait"},
		{"no stream", "https://example.com/v", "/tmp", false, false, false, NoticeWarning, "Select video, audio, or both"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newFakeDownloader()
			svc.downloading = tt.downloading
			ui, rec := newTestUI(t, svc)

			ui.urlEntry.SetText(tt.url)
			ui.outputDir = tt.dir
			ui.videoCheck.SetChecked(tt.video)
			ui.audioCheck.SetChecked(tt.audio)

			test.Tap(ui.downloadBtn)

			require.Len(t, rec.all(), 1)
			assert.Equal(t, tt.kind, rec.all()[0].kind)
			assert.Equal(t, tt.message, rec.all()[0].message)
			assert.Zero(t, svc.startCount())
		})
	}
}

func TestRootUI_StartEnablesPause(t *testing.T) {
	svc := newFakeDownloader()
	ui, rec := newTestUI(t, svc)

	ui.urlEntry.SetText("  https://example.com/v  ")
	ui.setOutputDir("/tmp/out")
	ui.audioCheck.SetChecked(false)

	test.Tap(ui.downloadBtn)

	assert.Empty(t, rec.all())
	require.Equal(t, 1, svc.startCount())
	assert.Equal(t, "https://example.com/v", svc.started[0].URL)
	assert.Equal(t, "/tmp/out", svc.started[0].OutputDir)
	assert.True(t, svc.started[0].IncludeVideo)
	assert.False(t, svc.started[0].IncludeAudio)
	assert.False(t, ui.pauseBtn.Disabled())
	assert.Equal(t, "Downloading: example.com/v", ui.statusLabel.Text)
	assert.False(t, ui.settings.GetIncludeAudio())
	assert.Equal(t, "/tmp/out", ui.settings.GetOutputDirectory())
}

func TestRootUI_StartRejectedByService(t *testing.T) {
	svc := newFakeDownloader()
	svc.startErr = model.ErrAlreadyDownloading
	ui, rec := newTestUI(t, svc)

	ui.urlEntry.SetText("https://example.com/v")
	ui.outputDir = "/tmp"
	test.Tap(ui.downloadBtn)

	require.Len(t, rec.all(), 1)
	assert.Equal(t, NoticeInfo, rec.all()[0].kind)
	assert.True(t, ui.pauseBtn.Disabled())
}

func TestRootUI_TogglePause(t *testing.T) {
	svc := newFakeDownloader()
	ui, _ := newTestUI(t, svc)
	ui.pauseBtn.Enable()

	test.Tap(ui.pauseBtn)
	assert.Equal(t, IconPlay+" Resume", ui.pauseBtn.Text)
	assert.True(t, svc.Paused())

	test.Tap(ui.pauseBtn)
	assert.Equal(t, IconPause+" Pause", ui.pauseBtn.Text)
	assert.False(t, svc.Paused())
	assert.False(t, svc.Downloading())
}

func TestRootUI_ApplyProgress(t *testing.T) {
	ui, _ := newTestUI(t, newFakeDownloader())

	ui.applyUpdate(model.Update{Kind: model.UpdateProgress, Percent: 25, Label: model.FormatPercent(25)})

	assert.Equal(t, 25.0, ui.progressBar.Value)
	assert.Equal(t, "Progress: 25.0%", ui.progressLabel.Text)
}

func TestRootUI_ApplyInfo(t *testing.T) {
	ui, _ := newTestUI(t, newFakeDownloader())

	ui.applyUpdate(model.Update{Kind: model.UpdateInfo, Message: "Playlist with 3 entries"})

	assert.Equal(t, "Playlist with 3 entries", ui.statusLabel.Text)
}

func TestRootUI_ApplyFinished(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ui, rec := newTestUI(t, newFakeDownloader())
		ui.pauseBtn.Enable()
		ui.updatePauseLabel(true)
		ui.applyUpdate(model.Update{Kind: model.UpdateProgress, Percent: 80, Label: "80.0%"})

		ui.applyUpdate(model.Update{Kind: model.UpdateFinished})

		assert.True(t, ui.pauseBtn.Disabled())
		assert.Equal(t, IconPause+" Pause", ui.pauseBtn.Text)
		assert.Equal(t, ProgressMin, ui.progressBar.Value)
		assert.Equal(t, "Progress: 0%", ui.progressLabel.Text)
		require.Len(t, rec.all(), 1)
		assert.Equal(t, notice{NoticeComplete, "Download complete!"}, rec.all()[0])
	})

	t.Run("failure", func(t *testing.T) {
		ui, rec := newTestUI(t, newFakeDownloader())
		ui.pauseBtn.Enable()

		ui.applyUpdate(model.Update{Kind: model.UpdateFinished, Err: errors.New("HTTP Error 404")})

		assert.True(t, ui.pauseBtn.Disabled())
		assert.Equal(t, "Progress: 0%", ui.progressLabel.Text)
		require.Len(t, rec.all(), 1)
		assert.Equal(t, notice{NoticeError, "Download failed: HTTP Error 404"}, rec.all()[0])
	})

	t.Run("opens folder when enabled", func(t *testing.T) {
		ui, _ := newTestUI(t, newFakeDownloader())
		ui.settings.SetOpenFolderOnComplete(true)

		var opened string
		ui.openFolder = func(dir string) error {
			opened = dir
			return nil
		}

		req := model.NewDownloadRequest("https://example.com/v", "/tmp/out", true, true)
		ui.applyUpdate(model.Update{Kind: model.UpdateFinished, Attempt: model.NewAttempt(req)})

		assert.Equal(t, "/tmp/out", opened)
	})
}

func TestRootUI_ShowDialog(t *testing.T) {
	ui, _ := newTestUI(t, newFakeDownloader())

	type shown struct {
		title, message string
		isError        bool
	}
	var got []shown
	ui.showInfo = func(title, message string, _ fyne.Window) {
		got = append(got, shown{title: title, message: message})
	}
	ui.showError = func(err error, _ fyne.Window) {
		got = append(got, shown{message: err.Error(), isError: true})
	}

	ui.showDialog(NoticeWarning, "Please enter a video URL")
	ui.showDialog(NoticeInfo, "A download is in progress, please wait")
	ui.showDialog(NoticeComplete, "Download complete!")
	ui.showDialog(NoticeError, "Download failed: HTTP Error 404")

	assert.Equal(t, []shown{
		{title: "Warning", message: "Please enter a video URL"},
		{title: "Notice", message: "A download is in progress, please wait"},
		{title: "Done", message: "Download complete!"},
		{message: "Download failed: HTTP Error 404", isError: true},
	}, got)
}

func TestRootUI_LanguageChange(t *testing.T) {
	ui, _ := newTestUI(t, newFakeDownloader())

	ui.onLanguageChange("zh-TW")

	assert.Equal(t, "下載", ui.downloadBtn.Text)
	assert.Equal(t, "進度: 0%", ui.progressLabel.Text)
	assert.Equal(t, "zh-TW", ui.settings.GetLanguage())
}

// scriptedEngine reports fixed progress then returns err
type scriptedEngine struct {
	events []model.ProgressEvent
	err    error
}

func (e *scriptedEngine) Download(ctx context.Context, url string, opts download.EngineOptions, progress download.ProgressFunc) error {
	for _, ev := range e.events {
		progress(ev)
	}
	return e.err
}

func TestRootUI_EndToEnd(t *testing.T) {
	engine := &scriptedEngine{
		events: []model.ProgressEvent{
			{Status: model.ProgressStatusDownloading, DownloadedBytes: 50, TotalBytes: 200},
		},
		err: errors.New("network unreachable"),
	}
	svc := download.NewService(engine, download.Options{}, nil)
	ui, rec := newTestUI(t, svc)

	ui.urlEntry.SetText("https://example.com/v")
	ui.outputDir = t.TempDir()
	test.Tap(ui.downloadBtn)

	assert.Eventually(t, func() bool {
		return len(rec.all()) == 1
	}, 2*time.Second, 10*time.Millisecond)

	got := rec.all()
	require.Len(t, got, 1)
	assert.Equal(t, notice{NoticeError, "Download failed: network unreachable"}, got[0])
	assert.False(t, svc.Downloading())

	var disabled bool
	fyne.DoAndWait(func() { disabled = ui.pauseBtn.Disabled() })
	assert.True(t, disabled)
}
