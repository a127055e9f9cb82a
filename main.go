package main

import (
	"context"
	"embed"
	"fmt"
	"log"
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/logger"
	"github.com/wailsapp/wails/v2/pkg/menu"
	"github.com/wailsapp/wails/v2/pkg/menu/keys"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
	"github.com/wailsapp/wails/v2/pkg/options/linux"
	"github.com/wailsapp/wails/v2/pkg/options/mac"
	"github.com/wailsapp/wails/v2/pkg/options/windows"
	wruntime "github.com/wailsapp/wails/v2/pkg/runtime"

	"github.com/MJE43/the-floor-go/bindings"
	"github.com/MJE43/the-floor-go/internal/spectate"
)

//go:embed all:frontend/dist
var assets embed.FS

const (
	appConfigDirName = "the-floor"
	repoURL          = "https://github.com/MJE43/the-floor-go"
)

var (
	appCtx   context.Context
	appCtxMu sync.RWMutex
)

// buildWindowsOptions configures Windows-specific application settings
func buildWindowsOptions() *windows.Options {
	return &windows.Options{
		BackdropType: windows.Mica,
		Theme:        windows.SystemDefault,

		CustomTheme: &windows.ThemeSettings{
			// Dark mode (matches the stage backdrop)
			DarkModeTitleBar:  windows.RGB(17, 24, 39),
			DarkModeTitleText: windows.RGB(226, 232, 240),
			DarkModeBorder:    windows.RGB(51, 65, 85),

			LightModeTitleBar:  windows.RGB(248, 250, 252),
			LightModeTitleText: windows.RGB(15, 23, 42),
			LightModeBorder:    windows.RGB(226, 232, 240),
		},

		WebviewIsTransparent: false,
		WindowIsTranslucent:  false,

		DisablePinchZoom:     true,
		IsZoomControlEnabled: false,
		ZoomFactor:           1.0,

		OnSuspend: func() {
			log.Println("Windows entering low power mode")
		},
		OnResume: func() {
			log.Println("Windows resuming from low power mode")
		},
	}
}

// buildMacOptions configures macOS-specific application settings
func buildMacOptions() *mac.Options {
	iconData, err := assets.ReadFile("frontend/dist/assets/logo.png")
	var aboutIcon []byte
	if err == nil {
		aboutIcon = iconData
	}

	return &mac.Options{
		TitleBar: &mac.TitleBar{
			TitlebarAppearsTransparent: false,
			HideTitle:                  false,
			HideTitleBar:               false,
			FullSizeContent:            false,
			UseToolbar:                 false,
			HideToolbarSeparator:       true,
		},

		WebviewIsTransparent: false,
		WindowIsTranslucent:  false,

		About: &mac.AboutInfo{
			Title: "The Floor",
			Message: "A desktop host console for running The Floor trivia game.\n\n" +
				"Built with Wails\n\n" +
				"All game data stays on this machine.",
			Icon: aboutIcon,
		},
	}
}

// buildLinuxOptions configures Linux-specific application settings
func buildLinuxOptions() *linux.Options {
	iconData, err := assets.ReadFile("frontend/dist/assets/logo.png")
	var windowIcon []byte
	if err == nil {
		windowIcon = iconData
	}

	return &linux.Options{
		Icon:                windowIcon,
		WindowIsTranslucent: false,
		WebviewGpuPolicy:    linux.WebviewGpuPolicyAlways,
		ProgramName:         "the-floor",
	}
}

func main() {
	log.Printf("Starting The Floor (Go %s)...", runtime.Version())

	app := bindings.New()

	// The spectate server is built lazily in startup: it needs the
	// config and database the app opens there.
	var spectateSrv *spectate.Server

	startup := func(ctx context.Context) {
		app.Startup(ctx)
		setAppContext(ctx)

		cfg := app.Config()
		spectateSrv = spectate.New(app.Snapshot, app.DB(), cfg.SpectatePort, cfg.SpectateToken)
		if err := spectateSrv.Start(); err != nil {
			log.Printf("spectate server failed to start: %v", err)
			spectateSrv = nil
		} else {
			log.Printf("Spectate API ready at http://%s (token enabled: %v)",
				spectateSrv.Addr(), cfg.SpectateToken != "")
		}
	}

	beforeClose := func(ctx context.Context) (prevent bool) {
		if spectateSrv != nil {
			if err := spectateSrv.Shutdown(ctx); err != nil {
				log.Printf("spectate server shutdown error: %v", err)
			}
		}
		setAppContext(nil)
		log.Println("Application is closing")
		return false
	}

	if err := wails.Run(&options.App{
		Title:            "The Floor",
		Width:            1280,
		Height:           800,
		MinWidth:         1024,
		MinHeight:        768,
		WindowStartState: options.Normal,
		Frameless:        false,
		DisableResize:    false,
		Fullscreen:       false,
		StartHidden:      false,
		AlwaysOnTop:      false,
		BackgroundColour: &options.RGBA{R: 17, G: 24, B: 39, A: 255},

		AssetServer: &assetserver.Options{
			Assets: assets,
		},

		OnStartup:     startup,
		OnBeforeClose: beforeClose,
		OnShutdown:    app.Shutdown,

		Menu: buildAppMenu(),

		Bind: []interface{}{app},

		LogLevel:           logger.INFO,
		LogLevelProduction: logger.ERROR,

		EnableDefaultContextMenu:         false,
		EnableFraudulentWebsiteDetection: false,

		ErrorFormatter: func(err error) any {
			if err == nil {
				return nil
			}
			return err.Error()
		},

		// Single Instance Lock - two hosts fighting over one board is chaos
		SingleInstanceLock: &options.SingleInstanceLock{
			UniqueId: "7b1f0a2c-93de-4f5a-b8c1-the-floor-go",
			OnSecondInstanceLaunch: func(data options.SecondInstanceData) {
				log.Printf("Second instance launch prevented. Args: %v", data.Args)
			},
		},

		DragAndDrop: &options.DragAndDrop{
			EnableFileDrop:     false,
			DisableWebViewDrop: true,
		},

		Windows: buildWindowsOptions(),
		Mac:     buildMacOptions(),
		Linux:   buildLinuxOptions(),
	}); err != nil {
		log.Printf("Error running Wails app: %v", err)
		fmt.Printf("Error: %v\n", err)
		panic(err)
	}

	log.Println("Application exited normally")
}

// appDataDir returns an OS-appropriate writable directory.
func appDataDir() string {
	if d, err := os.UserConfigDir(); err == nil && d != "" {
		return filepath.Join(d, appConfigDirName)
	}
	if h, err := os.UserHomeDir(); err == nil && h != "" {
		return filepath.Join(h, "."+appConfigDirName)
	}
	return "."
}

func buildAppMenu() *menu.Menu {
	rootMenu := menu.NewMenu()

	if runtime.GOOS == "darwin" {
		if appMenu := menu.AppMenu(); appMenu != nil {
			rootMenu.Append(appMenu)
		}
	}

	fileMenu := menu.NewMenu()
	fileMenu.AddText("Open Data Directory", keys.CmdOrCtrl("o"), func(_ *menu.CallbackData) {
		withAppContext(func(ctx context.Context) {
			openPathInExplorer(ctx, appDataDir())
		})
	})
	fileMenu.AddSeparator()
	fileMenu.AddText("Quit", keys.CmdOrCtrl("q"), func(_ *menu.CallbackData) {
		withAppContext(func(ctx context.Context) {
			wruntime.Quit(ctx)
		})
	})
	rootMenu.Append(menu.SubMenu("File", fileMenu))

	viewMenu := menu.NewMenu()
	viewMenu.AddText("Reload Frontend", keys.CmdOrCtrl("r"), func(_ *menu.CallbackData) {
		withAppContext(func(ctx context.Context) {
			wruntime.WindowReloadApp(ctx)
		})
	})
	viewMenu.AddText("Toggle Fullscreen", keys.Combo("f", keys.CmdOrCtrlKey, keys.ShiftKey), func(_ *menu.CallbackData) {
		withAppContext(func(ctx context.Context) {
			toggleFullscreen(ctx)
		})
	})
	rootMenu.Append(menu.SubMenu("View", viewMenu))

	helpMenu := menu.NewMenu()
	helpMenu.AddText("Project Repository", nil, func(_ *menu.CallbackData) {
		withAppContext(func(ctx context.Context) {
			wruntime.BrowserOpenURL(ctx, repoURL)
		})
	})
	rootMenu.Append(menu.SubMenu("Help", helpMenu))

	return rootMenu
}

func openPathInExplorer(ctx context.Context, path string) {
	if path == "" {
		return
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		log.Printf("resolve path %s failed: %v", path, err)
		abs = path
	}

	wruntime.BrowserOpenURL(ctx, fileURI(abs))
}

func fileURI(path string) string {
	clean := filepath.ToSlash(path)
	if runtime.GOOS == "windows" && len(clean) > 0 && clean[0] != '/' {
		clean = "/" + clean
	}

	u := url.URL{Scheme: "file", Path: clean}
	return u.String()
}

func toggleFullscreen(ctx context.Context) {
	if wruntime.WindowIsFullscreen(ctx) {
		wruntime.WindowUnfullscreen(ctx)
		return
	}
	wruntime.WindowFullscreen(ctx)
}

func setAppContext(ctx context.Context) {
	appCtxMu.Lock()
	defer appCtxMu.Unlock()
	appCtx = ctx
}

func withAppContext(action func(context.Context)) {
	appCtxMu.RLock()
	ctx := appCtx
	appCtxMu.RUnlock()
	if ctx == nil {
		log.Println("application context not initialised; ignoring menu action")
		return
	}
	action(ctx)
}
