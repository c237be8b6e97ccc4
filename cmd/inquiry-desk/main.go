package main

import (
	"os"
)

// @title Inquiry Desk API
// @version 1.0.0
// @description Staff tool that drafts student and advisor emails and tracks program inquiries.
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
