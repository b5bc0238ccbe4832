package main

import (
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"aerostride.shop/web/internal/catalog"
	"aerostride.shop/web/internal/config"
	"aerostride.shop/web/internal/content"
	"aerostride.shop/web/internal/logging"
	mw "aerostride.shop/web/internal/middleware"
)

var (
	templatesDir = "templates"
	assetsDir    = "assets"
	// devMode reparses templates on every request
	devMode   bool
	tmplCache *template.Template

	logger      = zap.NewNop()
	shopCatalog *catalog.Catalog
	collections []content.Collection
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("config: %v", err))
	}

	logger, err = logging.New(cfg.LogLevel)
	if err != nil {
		panic(fmt.Sprintf("logger: %v", err))
	}
	defer func() { _ = logger.Sync() }()

	templatesDir = cfg.TemplatesDir
	assetsDir = cfg.AssetsDir
	devMode = !cfg.Prod()
	mw.ConfigureSession(cfg.SessionKey, cfg.Prod())

	if !devMode {
		tc, err := parseTemplates()
		if err != nil {
			logger.Fatal("parse templates", zap.Error(err))
		}
		tmplCache = tc
	}

	// The catalog load is deliberately non-fatal: an unreachable or
	// malformed resource degrades to an empty grid with an inline
	// message, never a dead page.
	shopCatalog = catalog.New(logger)
	_ = shopCatalog.Load(cfg.CatalogPath)

	collections, err = content.LoadCollections(filepath.Join(cfg.ContentDir, "collections"))
	if err != nil {
		logger.Error("load collections", zap.Error(err))
	}

	r := newRouter()

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	logger.Info("web listening", zap.String("addr", cfg.Addr), zap.Bool("dev", devMode))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("listen", zap.Error(err))
	}
}

func newRouter() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(mw.HTMX)
	r.Use(mw.Session)
	r.Use(mw.CSRF)
	r.Use(mw.Logger(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Handle("/assets/*", http.StripPrefix("/assets", mw.AssetsWithCache(assetsDir)))

	r.Get("/", HomeHandler)
	r.Get("/shop", ShopHandler)
	r.Get("/shop/grid", ShopGridFrag)
	r.Get("/shop/quick-view/{productID}", QuickViewFrag)
	r.Get("/collections", CollectionsHandler)
	r.Get("/checkout", CheckoutHandler)

	r.Get("/cart", CartHandler)
	r.Get("/cart/drawer", CartDrawerFrag)
	r.Post("/cart/items", CartAddHandler)
	r.Post("/cart/items/{productID}/quantity", CartQuantityHandler)
	r.Post("/cart/items/{productID}/remove", CartRemoveHandler)

	return r
}

func parseTemplates() (*template.Template, error) {
	funcMap := template.FuncMap{
		"now": time.Now,
	}
	// Recursively discover and parse all .tmpl files. ParseGlob doesn't support **.
	var files []string
	if err := filepath.WalkDir(templatesDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.HasSuffix(d.Name(), ".tmpl") {
			files = append(files, path)
		}
		return nil
	}); err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no templates found under %s", templatesDir)
	}
	return template.New("_root").Funcs(funcMap).ParseFiles(files...)
}

func templates(w http.ResponseWriter) *template.Template {
	if devMode {
		tc, err := parseTemplates()
		if err != nil {
			http.Error(w, fmt.Sprintf("template parse error: %v", err), http.StatusInternalServerError)
			return nil
		}
		return tc
	}
	if tmplCache == nil {
		http.Error(w, "templates not initialized", http.StatusInternalServerError)
		return nil
	}
	return tmplCache
}

// renderPage executes a full page template.
func renderPage(w http.ResponseWriter, r *http.Request, name string, data any) {
	renderTemplate(w, r, name, data)
}

// renderTemplate executes a named template (page or htmx fragment).
func renderTemplate(w http.ResponseWriter, r *http.Request, name string, data any) {
	t := templates(w)
	if t == nil {
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := t.ExecuteTemplate(w, name, data); err != nil {
		logger.Error("template exec", zap.String("template", name), zap.Error(err))
	}
}
