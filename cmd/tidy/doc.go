// Command tidy organizes the files in a directory into subfolders by type,
// date, category, or GPS location, and reports duplicate content.
package main
