package http

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/gorilla/mux"

	"github.com/donmikel/imagebox/applications/server"
)

func NewRouter(svc server.ImageService, logger log.Logger) http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/image", PutImageHandler(svc, logger)).Methods(http.MethodPut)
	r.HandleFunc("/image/{filename}", GetImageHandler(svc, logger)).Methods(http.MethodGet)
	return r
}

// PutImageHandler reads the request body as a legacy binary string, decodes
// it into a PNG file bundle, persists it and responds with the file name.
func PutImageHandler(svc server.ImageService, logger log.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			level.Error(logger).Log("msg", "body read error",
				"err", err,
			)
			writeErr(w, err, http.StatusInternalServerError)
			return
		}

		file, err := svc.CreateImageFromBinaryString(r.Context(), string(body))
		if err != nil {
			level.Error(logger).Log("msg", "CreateImageFromBinaryString error",
				"err", err,
			)
			writeErr(w, err, http.StatusBadRequest)
			return
		}

		if err = svc.DownloadFile(r.Context(), &file); err != nil {
			level.Error(logger).Log("msg", "DownloadFile error",
				"err", err,
			)
			writeErr(w, err, http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusCreated)
		if _, err = w.Write([]byte(file.Name)); err != nil {
			level.Error(logger).Log("msg", "error writing response", "err", err)
		}
	}
}

func GetImageHandler(svc server.ImageService, logger log.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filename := mux.Vars(r)["filename"]
		if filename == "" {
			writeErr(w, errors.New("empty filename"), http.StatusBadRequest)
			return
		}

		file, err := svc.GetFile(r.Context(), filename)
		if err != nil {
			writeErr(w, err, http.StatusNotFound)
			return
		}

		if file.MIMEType != "" {
			w.Header().Set("Content-Type", file.MIMEType)
		}
		w.Header().Set("Content-Length", strconv.FormatInt(file.Size(), 10))

		if _, err = w.Write(file.Content); err != nil {
			level.Error(logger).Log("msg", "error body copy", "err", err)
			return
		}
	}
}

func writeErr(w http.ResponseWriter, err error, status int) {
	w.WriteHeader(status)
	_, err = w.Write([]byte(err.Error()))
	if err != nil {
		fmt.Println("can't write response ", err)
	}
}
