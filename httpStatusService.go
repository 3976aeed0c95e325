package main

import (
	"log"
	"net/http"

	"golang.org/x/net/context"
)

type httpStatusService struct {
	srv *http.Server
}

func (h *httpStatusService) launch(handler *statusHandler, addr string) {
	h.srv = &http.Server{Addr: addr, Handler: newStatusRouter(handler)}

	// add to the wg
	wg.Add(1)

	go func() {
		defer wg.Done()
		log.Println("starting status service http server")
		err := h.srv.ListenAndServe()
		log.Print(err)
		log.Print("Exiting status service")
	}()
}

func (h *httpStatusService) stop() {
	if h.srv != nil {
		h.srv.Shutdown(context.Background())
	}
}
