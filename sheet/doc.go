// Package sheet lays out rectified cards on a printable A4 page.
//
// The page raster is fixed at 2480x3508 pixels, A4 portrait at 300 DPI, and
// the physical scale is 118.11 pixels per centimeter. These constants are
// part of the output contract: sheets produced here must print at true size
// next to sheets produced by earlier versions of the tool.
//
// A sheet holds one or two cards. Each card is scaled so its printed width
// matches the requested physical width, drawn with softly rounded corners,
// and centered horizontally; a single card sits at the vertical center, a
// pair sits at one third and two thirds of the page height.
package sheet
