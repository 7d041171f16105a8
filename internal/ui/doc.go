// Package ui contains the Fyne desktop skin. It only renders: searches and
// downloads are delegated to the download service, and job snapshots arrive
// on the Fyne thread through fyne.Do. All UI strings are localized via
// Localization.
package ui
