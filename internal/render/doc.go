// Package render prints suite trees and feature listings for the CLI.
package render
