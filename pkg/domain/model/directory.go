package model

// Router is the canonical form of a reverse proxy router. Field casing of the
// wire data has already been resolved by the time a Router exists.
type Router struct {
	ServiceName string
	Rule        string
}

// Service is a named pool of backend servers
type Service struct {
	Servers []Server
}

// Server is one backend endpoint. URL is empty when the wire entry carried
// nothing usable.
type Server struct {
	URL string
}

// ServiceEntry is one element of the full service listing
type ServiceEntry struct {
	// Key is the mapping key when the listing was an object, empty for arrays
	Key string
	// Names holds the secondary name fields of the entry
	Names   []string
	Service Service
}

// ServiceDirectory is the full service listing in document order
type ServiceDirectory []ServiceEntry

// Find looks a service up by exact key first, then by secondary name fields
func (d ServiceDirectory) Find(name string) (Service, bool) {
	for _, e := range d {
		if e.Key != "" && e.Key == name {
			return e.Service, true
		}
	}

	for _, e := range d {
		for _, n := range e.Names {
			if n == name {
				return e.Service, true
			}
		}
	}

	return Service{}, false
}
