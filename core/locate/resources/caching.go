package resources

import (
	"os"
	"path/filepath"

	"github.com/npillmayer/quire/core"
	"github.com/npillmayer/schuko/gconf"
)

// CacheDirPath checks and possibly creates a folder in the user's cache
// directory. The base cache directory is taken from `os.UserCacheDir()`, plus
// an application specific key, taken as `app-key` from the global configuration.
// Clients may specify a sequence of folder names, which will be appended to
// the base cache path. Non-existing sub-folders will be created as necessary
// (with permissions 755).
func CacheDirPath(subfolders ...string) (string, error) {
	appkey := gconf.GetString("app-key")
	tracer().Debugf("config[%s] = %s", "app-key", appkey)
	if appkey == "" {
		return "", core.Error(core.EMISSING, "application key is not set")
	}
	cachedir, err := os.UserCacheDir()
	if err != nil {
		return "", core.WrapError(err, core.EMISSING, "no cache directory")
	}
	cachedir = filepath.Join(append([]string{cachedir, appkey}, subfolders...)...)
	tracer().Infof("caching in %s", cachedir)
	if _, err = os.Stat(cachedir); os.IsNotExist(err) {
		if err = os.MkdirAll(cachedir, 0755); err != nil {
			return "", core.WrapError(err, core.EIO, "cannot create cache directory")
		}
	}
	return cachedir, nil
}

// CacheFile returns the path of a file within the application's cache
// directory, creating sub-folders as necessary. The file itself is not
// created.
func CacheFile(name string, subfolders ...string) (string, error) {
	dir, err := CacheDirPath(subfolders...)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, name), nil
}
