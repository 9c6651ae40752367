package main

import (
	"context"
	"errors"
	"fmt"
	"image"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/beka-birhanu/coffee-shop/api"
	"github.com/beka-birhanu/coffee-shop/assets"
	"github.com/beka-birhanu/coffee-shop/config"
	"github.com/beka-birhanu/coffee-shop/input"
	"github.com/beka-birhanu/coffee-shop/render"
	"github.com/beka-birhanu/coffee-shop/service"
	general_i "github.com/beka-birhanu/vinom-common/interfaces/general"
	logger "github.com/beka-birhanu/vinom-common/log"
	"github.com/hajimehoshi/ebiten/v2"
	"google.golang.org/grpc"
)

// Global variables for dependencies
var (
	tileImage    image.Image
	fontImage    image.Image
	store        *service.Store
	gameLoop     *service.Loop
	spawner      *service.Spawner
	panel        *api.Panel
	inputAdapter *input.Adapter
	game         *render.Game
	grpcServer   *grpc.Server
	httpServer   *http.Server
	appLogger    general_i.Logger
)

func initAssets() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	images, err := assets.LoadAll(ctx,
		filepath.Join(config.Envs.AssetDir, config.Envs.TilesImage),
		// http://mfs.sub.jp/font.html
		filepath.Join(config.Envs.AssetDir, config.Envs.FontImage),
	)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Loading assets: %v", err))
		os.Exit(1)
	}
	tileImage, fontImage = images[0], images[1]
	appLogger.Info("Assets loaded")
}

func initStore() {
	initial := service.InitialState(
		service.Screen{Width: config.Envs.ScreenWidth, Height: config.Envs.ScreenHeight},
		config.Envs.SpriteRows,
		config.Envs.SpriteCols,
		service.NewRNG(config.Envs.RNGSeed),
	)
	initial.Debug = config.Envs.Debug

	storeLogger, err := logger.New("STORE", config.ColorCyan, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating store logger: %v", err))
		os.Exit(1)
	}
	s, err := service.NewStore(&service.StoreConfig{
		Initial: initial,
		Logger:  storeLogger,
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating store: %v", err))
		os.Exit(1)
	}
	store = s

	spawner, err = service.NewSpawner(store, config.Envs.CustomerInterval, config.Envs.MaxQueue)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating customer spawner: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Store initialized")
}

func initPanel() {
	panelLogger, err := logger.New("DEBUG-PANEL", config.ColorMagenta, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating debug panel logger: %v", err))
		os.Exit(1)
	}
	p, err := api.NewPanel(&api.PanelConfig{
		Store:  store,
		Logger: panelLogger,
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating debug panel: %v", err))
		os.Exit(1)
	}
	panel = p
	appLogger.Info("Debug panel initialized")
}

func initLoop() {
	l, err := service.NewLoop(service.LoopConfig{
		UpdatePeriod: config.Envs.UpdatePeriod,
		DrawPeriod:   config.Envs.DrawPeriod,
		FrameRate:    config.Envs.FrameRate,
		MaxCatchup:   config.Envs.MaxCatchup,
		Update: func(dt time.Duration) {
			// Only timers that are running react to the tick.
			store.Dispatch(service.Tick(dt))
			spawner.Advance(dt)
		},
		Draw: func(interp float64) {
			if game != nil {
				game.SetInterpolation(interp)
			}
		},
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating game loop: %v", err))
		os.Exit(1)
	}
	gameLoop = l
	appLogger.Info("Game loop initialized")
}

func initInput() {
	inputLogger, err := logger.New("INPUT", config.ColorYellow, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating input logger: %v", err))
		os.Exit(1)
	}
	a, err := input.NewAdapter(&input.Config{
		Store:  store,
		Loop:   gameLoop,
		Logger: inputLogger,
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating input adapter: %v", err))
		os.Exit(1)
	}
	inputAdapter = a
	appLogger.Info("Input adapter initialized")
}

func initRenderer() {
	renderLogger, err := logger.New("RENDER", config.ColorBlue, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating renderer logger: %v", err))
		os.Exit(1)
	}
	g, err := render.NewGame(&render.Config{
		Store:  store,
		Loop:   gameLoop,
		Input:  inputAdapter,
		Tiles:  tileImage,
		Font:   fontImage,
		Logger: renderLogger,
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating renderer: %v", err))
		os.Exit(1)
	}
	game = g
	appLogger.Info("Renderer initialized")
}

func initDebugServers() {
	debugLogger, err := logger.New("DEBUG-API", config.ColorMagenta, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating debug API logger: %v", err))
		os.Exit(1)
	}

	if addr := config.Envs.DebugGrpcAddr; addr != "" {
		lis, err := net.Listen("tcp", addr)
		if err != nil {
			appLogger.Error(fmt.Sprintf("Listening tcp: %v", err))
			os.Exit(1)
		}
		grpcServer = grpc.NewServer()
		if err := api.RegisterNewDebugServer(grpcServer, panel); err != nil {
			appLogger.Error(fmt.Sprintf("Registering debug service: %v", err))
			os.Exit(1)
		}
		go func() {
			if err := grpcServer.Serve(lis); err != nil {
				debugLogger.Error(fmt.Sprintf("Serving gRPC: %v", err))
			}
		}()
		appLogger.Info(fmt.Sprintf("Serving debug gRPC at: %s", addr))
	}

	if addr := config.Envs.DebugHTTPAddr; addr != "" {
		mux := http.NewServeMux()
		api.NewPanelHandler(panel, debugLogger).Routes(mux)
		httpServer = &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
		go func() {
			if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				debugLogger.Error(fmt.Sprintf("Serving debug panel: %v", err))
			}
		}()
		appLogger.Info(fmt.Sprintf("Serving debug panel at: %s", addr))
	}
}

func enqueueInitialCustomers() {
	for range config.Envs.InitialCustomers {
		store.DispatchCommand(service.NewCustomer())
	}
	appLogger.Info(fmt.Sprintf("%d customers waiting", len(store.GetState().Customers)))
}

func shutdown() {
	gameLoop.Stop()
	if grpcServer != nil {
		grpcServer.GracefulStop()
	}
	if httpServer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = httpServer.Shutdown(ctx)
	}
}

func main() {
	appLogger, _ = logger.New("APP", config.ColorGreen, os.Stdout)

	if !config.Envs.Headless {
		initAssets()
	}
	initStore()
	initPanel()
	initLoop()
	initInput()
	initDebugServers()
	defer shutdown()

	enqueueInitialCustomers()

	if config.Envs.Headless {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		appLogger.Info("Running headless")
		gameLoop.Run(ctx)
		appLogger.Info(fmt.Sprintf("Loop finished with score %d", store.GetState().Score))
		return
	}

	initRenderer()
	ebiten.SetWindowSize(config.Envs.ScreenWidth*2, config.Envs.ScreenHeight*2)
	ebiten.SetWindowTitle("Coffee Shop")
	if err := ebiten.RunGame(game); err != nil {
		appLogger.Error(fmt.Sprintf("Running game: %v", err))
	}
}
