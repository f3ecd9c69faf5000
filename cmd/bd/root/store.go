package root

import (
	"beandex/internal/engine"
	"beandex/internal/storage"
)

func openStore() (*engine.Store, func(), error) {
	path := flagPath
	if path == "" {
		var err error
		path, err = storage.DefaultPath(flagEngine)
		if err != nil {
			return nil, nil, err
		}
	}

	persist, err := storage.NewByEngine(flagEngine, path)
	if err != nil {
		return nil, nil, err
	}

	store, err := engine.NewStore(persist)
	if err != nil {
		_ = persist.Close()
		return nil, nil, err
	}

	cleanup := func() {
		_ = persist.Close()
	}
	return store, cleanup, nil
}
