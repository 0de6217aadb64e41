// Package products exposes the placeholder products route.
//
// Every request under /api/products, whatever the method, receives 200 with a fixed
// JSON message. There is no products storage yet.
package products
