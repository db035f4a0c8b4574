// Package icons walks the dataset tree and generates the placeholder
// PNGs each category manifest lists.
//
// Every immediate subdirectory of the icons root is a category. A
// category's icon-names.txt names the icons it needs, one per line,
// with or without the .png extension. Icons that already exist on disk
// are never regenerated or overwritten, so repeated runs only fill in
// what is missing. Failures are contained: a bad icon or category is
// reported and the run moves on.
package icons
