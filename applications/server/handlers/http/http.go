package http

import (
	"net/http"

	"github.com/go-kit/log"

	"github.com/donmikel/imagebox/applications/server"
	"github.com/donmikel/imagebox/applications/server/config"
)

func NewHTTPServer(conf config.Api, imageService server.ImageService, logger log.Logger) *http.Server {
	mux := NewRouter(imageService, logger)
	return &http.Server{
		Addr:    conf.HTTPAddr,
		Handler: mux,
	}
}
