package i

import "github.com/beka-birhanu/coffee-shop/service"

var (
	_ GameStore = (*service.Store)(nil)
	_ GameLoop  = (*service.Loop)(nil)
)
