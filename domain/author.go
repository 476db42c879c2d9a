package domain

import "image"

// Author is the resolved identity of a message sender.
// It is built once per public key and shared by reference afterward.
type Author struct {
	Name   string
	Avatar image.Image
}
