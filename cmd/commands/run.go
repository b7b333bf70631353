package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"vitrine"
	"vitrine/config"
	"vitrine/internal/application/usecase"
	"vitrine/internal/domain/model"
	"vitrine/internal/infrastructure/blob"
	"vitrine/internal/infrastructure/database"
	"vitrine/internal/infrastructure/session"
	"vitrine/internal/presentation/handler"
	"vitrine/internal/presentation/middleware"
	"vitrine/pkg/logger"
)

// Storage namespaces, one per media feature. Video namespaces are restricted
// to the containers the site player handles; image namespaces accept anything.
const (
	creativeVideoNamespace  = "videos/creatives"
	sponsorVideoNamespace   = "videos/sponsoring"
	socialVideoNamespace    = "videos/social"
	designImageNamespace    = "images/design"
	sponsorImageNamespace   = "images/sponsors"
	themeThumbnailNamespace = "images/themes"
)

func HandleRun(args []string) {
	if len(args) < 3 {
		ExitOnError(errors.New("at least 1 arguments expected\nuse help command for more information"))
	}

	cfg, err := config.Load(args[2])
	if err != nil {
		ExitOnError(err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		ExitOnError(err)
	}

	logger.Info("running vitrine", "version", vitrine.StringVersion())

	db, err := database.Connect(cfg.DBConfig)
	if err != nil {
		ExitOnError(err)
	}
	store := database.NewStore(db)

	blobClient, err := blob.New(&cfg.MinIOClient)
	if err != nil {
		ExitOnError(err)
	}
	if err := blobClient.EnsureBucket(context.Background(), cfg.BlobStore.Bucket); err != nil {
		ExitOnError(err)
	}

	uploader := blob.NewUploader(blobClient.MinioClient, &cfg.BlobStore)
	lister := blob.NewLister(blobClient.MinioClient, &cfg.BlobStore)
	remover := blob.NewRemover(blobClient.MinioClient, &cfg.BlobStore)
	getter := blob.NewGetter(blobClient.MinioClient, &cfg.BlobStore)

	sessions, err := session.NewStore(cfg.SessionStore)
	if err != nil {
		ExitOnError(err)
	}

	auth := usecase.NewAuth(sessions, cfg.Admin.Email, cfg.Admin.Password,
		time.Duration(cfg.SessionStore.TTLInMinutes)*time.Minute)
	settings := usecase.NewSettings(store)

	videoPolicy := &usecase.TypePolicy{
		Extensions: []string{"mp4", "mov", "m4v", "webm"},
		MIMEPrefix: "video/",
	}

	categories := usecase.NewCollection[model.CreativeCategory](store, lister, remover,
		usecase.CollectionConfig{
			Collection:     model.CreativeCategoryCollection,
			FolderKeyField: "folder",
			AssetNamespace: creativeVideoNamespace,
		})
	videos := usecase.NewCollection[model.CreativeVideo](store, nil, nil,
		usecase.CollectionConfig{
			Collection: model.CreativeVideoCollection,
			ScopeField: "categoryId",
		})
	sections := usecase.NewCollection[model.DesignSection](store, nil, nil,
		usecase.CollectionConfig{
			Collection: model.DesignSectionCollection,
		})
	items := usecase.NewCollection[model.DesignItem](store, lister, remover,
		usecase.CollectionConfig{
			Collection:     model.DesignItemCollection,
			ScopeField:     "sectionId",
			FolderKeyField: "galleryKey",
			AssetNamespace: designImageNamespace,
		})
	themeCategories := usecase.NewCollection[model.ThemeCategory](store, nil, nil,
		usecase.CollectionConfig{
			Collection: model.ThemeCategoryCollection,
		})
	themes := usecase.NewCollection[model.DevTheme](store, nil, nil,
		usecase.CollectionConfig{
			Collection: model.DevThemeCollection,
			ScopeField: "categoryId",
		})
	sponsors := usecase.NewCollection[model.SponsorImage](store, nil, nil,
		usecase.CollectionConfig{
			Collection: model.SponsorImageCollection,
		})
	social := usecase.NewCollection[model.SocialLink](store, nil, nil,
		usecase.CollectionConfig{
			Collection: model.SocialLinkCollection,
		})

	e := echo.New()
	e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowHeaders: []string{echo.HeaderAuthorization, echo.HeaderContentType, echo.HeaderContentLength},
		AllowMethods: []string{http.MethodGet, http.MethodPut, http.MethodPost,
			http.MethodDelete, http.MethodHead, http.MethodOptions},
		MaxAge: 86400,
	}))
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.Secure())
	e.Use(echoMiddleware.BodyLimit("200M"))
	e.Use(echoMiddleware.RateLimiter(echoMiddleware.NewRateLimiterMemoryStore(20)))

	e.GET("/health", func(c echo.Context) error {
		return c.String(200, "OK")
	})

	authHandler := handler.NewAuthHandler(auth)
	e.POST("/api/v1/auth/login", authHandler.HandleLogin)

	handler.NewBlobHandler(getter, cfg.BlobStore.Bucket).Register(e)

	api := e.Group("/api/v1", middleware.Session(auth))
	api.POST("/auth/logout", authHandler.HandleLogout)

	handler.NewCollectionHandler[model.CreativeCategory](categories, "", nil).
		Register(api, "/creatives/categories")
	handler.NewCollectionHandler[model.CreativeVideo](videos, "category", nil).
		Register(api, "/creatives/videos")
	handler.NewCollectionHandler[model.DesignSection](sections, "", nil).
		Register(api, "/design/sections")
	handler.NewCollectionHandler[model.DesignItem](items, "section", func() model.DesignItem {
		return model.DesignItem{GalleryKey: fmt.Sprintf("gallery_%d", time.Now().UnixMilli())}
	}).Register(api, "/design/items")
	handler.NewCollectionHandler[model.ThemeCategory](themeCategories, "", nil).
		Register(api, "/themes/categories")
	handler.NewCollectionHandler[model.DevTheme](themes, "category", nil).
		Register(api, "/themes/catalog")
	handler.NewCollectionHandler[model.SponsorImage](sponsors, "", nil).
		Register(api, "/sponsors")
	handler.NewCollectionHandler[model.SocialLink](social, "", nil).
		Register(api, "/social")

	handler.NewSettingsHandler(settings).Register(api, "/settings")

	mediaRoutes := map[string]struct {
		namespace string
		policy    *usecase.TypePolicy
	}{
		"/media/creatives":  {creativeVideoNamespace, videoPolicy},
		"/media/sponsoring": {sponsorVideoNamespace, videoPolicy},
		"/media/social":     {socialVideoNamespace, videoPolicy},
		"/media/design":     {designImageNamespace, nil},
		"/media/sponsors":   {sponsorImageNamespace, nil},
		"/media/themes":     {themeThumbnailNamespace, nil},
	}
	for base, route := range mediaRoutes {
		media := usecase.NewMedia(uploader, lister, remover, route.namespace, route.policy)
		handler.NewMediaHandler(media).Register(api, base)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := e.Start(cfg.Server.Address); err != nil && !errors.Is(err, http.ErrServerClosed) {
			ExitOnError(fmt.Errorf("shutting down server: %w", err))
		}
	}()

	<-ctx.Done()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		ExitOnError(err)
	}

	if err := db.Stop(); err != nil {
		logger.Error("closing database failed", "err", err)
	}
	if err := sessions.Close(); err != nil {
		logger.Error("closing session store failed", "err", err)
	}
}
