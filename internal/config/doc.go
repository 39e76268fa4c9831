// Package config loads vdiff.json, the project configuration.
//
//	{
//	  "server": {"host": "localhost", "port": 8080, "readTimeout": "5m"},
//	  "log": {"level": "debug", "format": "text"},
//	  "export": {
//	    "dir": "out",
//	    "s3": {"bucket": "previews", "prefix": "site/", "region": "us-east-1"}
//	  },
//	  "color": "auto"
//	}
//
// Missing fields take their defaults. Files are read through an afero.Fs so
// callers and tests can swap the filesystem.
package config
