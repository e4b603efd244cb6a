// Package main provides the vetomap CLI: conversion, validation,
// masking and plotting utilities for CMS jet veto maps.
package main

import (
	"fmt"
	"os"
)

// Exit codes: any fatal load error, structural mismatch, or content
// difference beyond tolerance exits non-zero.
const (
	exitOK    = 0
	exitError = 1
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitError)
	}
	os.Exit(exitOK)
}
