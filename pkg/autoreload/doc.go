// Package autoreload watches the configuration file for "serve --autoreload"
// and signals the serve loop to restart the listeners when it changes.
package autoreload
