// README: Entry point; loads config, wires the pipeline, starts the HTTP server.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"dreamstate/internal/ai"
	"dreamstate/internal/config"
	httptransport "dreamstate/internal/http"
	"dreamstate/internal/http/handlers"
	"dreamstate/internal/infra"
	"dreamstate/internal/maps"
	"dreamstate/internal/modules/chat"
	"dreamstate/internal/modules/fieldtype"
	"dreamstate/internal/modules/intent"
	"dreamstate/internal/modules/property"
	"dreamstate/internal/modules/reply"
	"dreamstate/internal/modules/uiconfig"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
	if err != nil {
		log.Fatal(err)
	}

	// Gemini is optional: without a key the classifier runs the
	// deterministic heuristic fallback and replies are canned.
	var (
		extractor intent.Extractor
		chatter   reply.Chatter
	)
	if cfg.AI.GeminiKey != "" {
		provider, err := ai.NewProvider(ctx, cfg.AI.GeminiKey)
		if err != nil {
			log.Fatalf("gemini init: %v", err)
		}
		defer provider.Close()
		extractor = provider
		chatter = provider
	} else {
		log.Print("GEMINI_API_KEY not set; using heuristic intent extraction")
	}

	var geocoder property.Geocoder
	if cfg.AI.MapsKey != "" {
		g, err := maps.NewGeocoder(cfg.AI.MapsKey)
		if err != nil {
			log.Fatalf("maps init: %v", err)
		}
		geocoder = g
	}

	propertyStore := property.NewStore(dbPool)
	propertySvc := property.NewService(propertyStore, geocoder)

	intentSvc := intent.NewService(extractor)
	replySvc := reply.NewService(chatter)

	chatSvc := chat.NewService(intentSvc, fieldtype.Resolve, propertySvc, propertySvc, replySvc)

	var actionSource handlers.ActionSource
	if cfg.Sheets.SheetID != "" && cfg.Sheets.CredentialsFile != "" {
		sheetsSvc, err := infra.NewSheets(ctx, cfg.Sheets.CredentialsFile)
		if err != nil {
			log.Fatalf("sheets init: %v", err)
		}
		var cache uiconfig.Cache = uiconfig.NewMemoryCache(cfg.Sheets.CacheTTL)
		if cfg.Redis.UseCache {
			cache = uiconfig.NewRedisCache(infra.NewRedis(cfg.Redis.Addr), cfg.Sheets.CacheTTL)
		}
		actionSource = uiconfig.NewService(uiconfig.NewStore(sheetsSvc, cfg.Sheets.SheetID, cfg.Sheets.Tab), cache)
	} else {
		log.Print("Google Sheets not configured; /api/ui/actions disabled")
	}

	server := &http.Server{
		Addr:    cfg.HTTP.Addr,
		Handler: httptransport.NewRouter(chatSvc, actionSource),
	}

	go func() {
		<-ctx.Done()
		_ = server.Shutdown(context.Background())
	}()

	log.Printf("listening on %s", cfg.HTTP.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
