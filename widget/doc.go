// SPDX-License-Identifier: Unlicense OR MIT

// Package widget implements the value bar and seek bar controls. Widgets
// contain persistent state and process pointer events. Package
// widget/material implements drawing of widgets.
package widget
