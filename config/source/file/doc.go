// Package file provides a file-based Source implementation for the config package.
//
// The source path is a base directory joined with a file name. Unlike a
// one-shot fetcher, the file is read on every Fetch call so that a reload
// observes the current contents on disk.
//
// Usage:
//
//	source, err := file.NewSource(baseDir, "config.json")
//	if err != nil {
//	    // Handle error: empty name
//	}
//	data, err := source.Fetch()
//
// Error Handling:
//   - Fetch wraps config.ErrSourceNotFound when the file does not exist
//   - Use errors.Is(err, file.ErrPathIsDirectory) to check for directory errors
//   - Errors include the filepath for easier debugging
//
// A Watcher reports changes to the file so callers can reload it.
package file
