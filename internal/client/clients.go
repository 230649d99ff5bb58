package client

import "time"

type Clients struct {
	*BackendAPI
	*DictionaryAPI
}

func InitClients(backendURL string, timeout time.Duration) Clients {
	return Clients{
		BackendAPI:    NewBackendAPI(backendURL, timeout),
		DictionaryAPI: NewDictionaryAPI(timeout),
	}
}
