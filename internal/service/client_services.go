package service

import (
	"github.com/sofyone/go-gig-desk/internal/adapter"
	"github.com/sofyone/go-gig-desk/internal/store"
)

type ClientServices struct {
	AuthService ClientAuthService
	DeskService ClientDeskService
}

func NewClientServices(sessionStore store.SessionStore, serverAdapter adapter.ServerAdapter) *ClientServices {
	return &ClientServices{
		AuthService: NewClientAuthService(sessionStore, serverAdapter),
		DeskService: NewClientDeskService(serverAdapter),
	}
}
