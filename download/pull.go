package download

import (
	"fmt"
	"io"
	"net/http"
	"path/filepath"

	"github.com/r3/RedditImageDownloader/constant"
	"github.com/r3/RedditImageDownloader/filesystem"
	"github.com/r3/RedditImageDownloader/log"
	"github.com/r3/RedditImageDownloader/network"
	"github.com/r3/RedditImageDownloader/util"
)

// Pull fetches the URL's bytes into a fresh scratch directory, then resolves
// final placement against the collision policy:
//
//   - destination exists, skip policy set: keep the old file, return ErrSkipped
//   - destination exists, overwrite policy set: atomically replace it
//   - destination exists, neither policy: probe for a unique name (bounded)
//   - otherwise: move the new file into place
//
// The scratch directory is removed regardless of outcome. Fetch failures are
// logged and returned as ErrFetchFailed; there is no retry at this layer.
func (d *Downloadable) Pull() error {
	filename, err := d.SafeFilename(false)
	if err != nil {
		return err
	}

	fs := filesystem.API()
	scratch, err := fs.TempDir("", constant.Imagespider)
	if err != nil {
		return err
	}
	defer util.Ignore(func() error { return fs.RemoveAll(scratch) })

	newCopy := filepath.Join(scratch, filename)
	if err := d.fetch(newCopy); err != nil {
		log.Warnf("Failed to download from URL: %s", d.url)
		return err
	}

	if err := fs.MkdirAll(d.settings.DestDir, 0o755); err != nil {
		return err
	}

	for {
		destination, err := d.Destination()
		if err != nil {
			return err
		}

		exists, err := fs.Exists(destination)
		if err != nil {
			return err
		}

		switch {
		case exists && d.settings.SkipCollisions:
			log.Info("Local copy detected, skipping colliding image")
			return ErrSkipped

		case exists && d.settings.Overwrite:
			log.Info("Local copy detected, overwriting it")
			oldCopy := filepath.Join(scratch, "to_delete.tmp")
			if err := move(destination, oldCopy); err != nil {
				return err
			}
			return move(newCopy, destination)

		case exists:
			log.Info("Local copy detected, creating a unique filename")
			if _, err := d.SafeFilename(true); err != nil {
				return err
			}
			// Loop around to place the already-fetched bytes under the new name.

		default:
			log.Debugf("Saving image: %s", destination)
			return move(newCopy, destination)
		}
	}
}

// fetch streams the URL body into path. Connection errors, timeouts and
// non-success statuses are reported as ErrFetchFailed.
func (d *Downloadable) fetch(path string) error {
	log.Debugf("Requesting URL: %s", d.url)

	req, err := http.NewRequest(http.MethodGet, d.url, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	req.Header.Set("User-Agent", constant.UserAgent)

	resp, err := network.Client.Do(req)
	if err != nil {
		log.Errorf("Failed to connect to URL: %s", d.url)
		return fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: status %d", ErrFetchFailed, resp.StatusCode)
	}

	if err := filesystem.API().WriteReader(path, resp.Body); err != nil {
		return fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}

	log.Debug("Writing successful")
	return nil
}

// move renames src to dst, falling back to copy-and-delete when the rename
// crosses filesystem boundaries.
func move(src, dst string) error {
	fs := filesystem.API()
	if err := fs.Rename(src, dst); err == nil {
		return nil
	}

	in, err := fs.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := fs.Create(dst)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}

	return fs.Remove(src)
}
