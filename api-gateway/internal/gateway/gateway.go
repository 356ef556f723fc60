package gateway

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Config struct {
	CatalogSvcURL   string
	OrderSvcURL     string
	AnalyticsSvcURL string
}

type route struct {
	prefix string
	exact  bool
	target func(Config) string
}

func catalogSvc(c Config) string   { return c.CatalogSvcURL }
func orderSvc(c Config) string     { return c.OrderSvcURL }
func analyticsSvc(c Config) string { return c.AnalyticsSvcURL }

// Checked in order; the first match wins.
var routes = []route{
	{prefix: "/api/analytics/", target: analyticsSvc},
	{prefix: "/api/restaurants", exact: true, target: catalogSvc},
	{prefix: "/api/restaurants/", target: catalogSvc},
	{prefix: "/api/cuisines", exact: true, target: catalogSvc},
	{prefix: "/api/carts", exact: true, target: orderSvc},
	{prefix: "/api/carts/", target: orderSvc},
	{prefix: "/api/checkout", exact: true, target: orderSvc},
	{prefix: "/api/orders", exact: true, target: orderSvc},
	{prefix: "/api/orders/", target: orderSvc},
	{prefix: "/api/contact", exact: true, target: orderSvc},
	{prefix: "/api/careers/", target: orderSvc},
}

type Gateway struct {
	config Config
	client HTTPClient
	log    logrus.FieldLogger
}

func NewGateway(config Config, client HTTPClient, log logrus.FieldLogger) *Gateway {
	return &Gateway{
		config: config,
		client: client,
		log:    log,
	}
}

func (g *Gateway) HealthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]string{
		"status":  "healthy",
		"service": "api-gateway",
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// Resolve returns the backend base URL serving path.
func (g *Gateway) Resolve(path string) (string, bool) {
	for _, rt := range routes {
		if (rt.exact && path == rt.prefix) || (!rt.exact && strings.HasPrefix(path, rt.prefix)) {
			return rt.target(g.config), true
		}
	}
	return "", false
}

func (g *Gateway) ProxyRequest(w http.ResponseWriter, r *http.Request, targetURL string) {
	url := strings.TrimRight(targetURL, "/") + r.URL.Path
	if r.URL.RawQuery != "" {
		url += "?" + r.URL.RawQuery
	}
	log := g.log.WithFields(logrus.Fields{"method": r.Method, "path": r.URL.Path, "target": targetURL})

	req, err := http.NewRequestWithContext(r.Context(), r.Method, url, r.Body)
	if err != nil {
		log.WithError(err).Error("failed to build proxy request")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	for k, v := range r.Header {
		req.Header[k] = v
	}

	resp, err := g.client.Do(req)
	if err != nil {
		log.WithError(err).Error("backend unreachable")
		http.Error(w, "Upstream service unavailable", http.StatusBadGateway)
		return
	}
	defer resp.Body.Close()

	for k, v := range resp.Header {
		w.Header()[k] = v
	}
	w.WriteHeader(resp.StatusCode)

	if _, err := io.Copy(w, resp.Body); err != nil {
		log.WithError(err).Warn("failed to copy backend response")
	}
	log.WithField("status", resp.StatusCode).Debug("proxied")
}

func (g *Gateway) RouteHandler(w http.ResponseWriter, r *http.Request) {
	target, ok := g.Resolve(r.URL.Path)
	if !ok {
		g.log.WithField("path", r.URL.Path).Warn("unmatched API route")
		http.Error(w, "API route not found", http.StatusNotFound)
		return
	}
	g.ProxyRequest(w, r, target)
}

func (g *Gateway) SetupRoutes() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/health", g.HealthCheck).Methods("GET")
	r.PathPrefix("/api/").HandlerFunc(g.RouteHandler)
	return r
}
