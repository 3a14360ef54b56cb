package main

import "expvar"

// Counters published on /v1/debug/vars.
var (
	paymentsInitiated = expvar.NewInt("payments_initiated")
	paymentsVerified  = expvar.NewInt("payments_verified")
	paymentsRejected  = expvar.NewInt("payments_rejected")
	ordersCreated     = expvar.NewInt("orders_created")
	externalErrors    = expvar.NewInt("external_errors")
)
