package traefik

import (
	"github.com/secmon-lab/applink/pkg/domain/model"
	"github.com/tidwall/gjson"
)

// Field names seen across Traefik versions and providers, in lookup order.
var (
	routerServiceFields = []string{"service", "Service", "ServiceName"}
	routerRuleFields    = []string{"rule", "Rule", "rules"}
	serverPoolFields    = []string{"loadBalancer.servers", "LoadBalancer.Servers", "servers", "Servers"}
	serverURLFields     = []string{"url", "URL", "server", "Server"}
	serviceNameFields   = []string{"service", "Name", "name"}
)

// eachEntry visits array elements, or object values with their keys, in
// document order. Other JSON values have no entries.
func eachEntry(doc gjson.Result, fn func(key string, value gjson.Result)) {
	switch {
	case doc.IsArray():
		doc.ForEach(func(_, value gjson.Result) bool {
			fn("", value)
			return true
		})
	case doc.IsObject():
		doc.ForEach(func(key, value gjson.Result) bool {
			fn(key.String(), value)
			return true
		})
	}
}

func firstString(v gjson.Result, fields []string) string {
	if !v.IsObject() {
		return ""
	}
	for _, f := range fields {
		if r := v.Get(f); r.Type == gjson.String && r.Str != "" {
			return r.Str
		}
	}
	return ""
}

func parseRouters(doc gjson.Result) []model.Router {
	var routers []model.Router
	eachEntry(doc, func(_ string, v gjson.Result) {
		routers = append(routers, model.Router{
			ServiceName: firstString(v, routerServiceFields),
			Rule:        firstString(v, routerRuleFields),
		})
	})
	return routers
}

func parseService(doc gjson.Result) model.Service {
	var svc model.Service
	if !doc.IsObject() {
		return svc
	}

	for _, f := range serverPoolFields {
		pool := doc.Get(f)
		if !pool.IsArray() {
			continue
		}
		pool.ForEach(func(_, entry gjson.Result) bool {
			svc.Servers = append(svc.Servers, parseServer(entry))
			return true
		})
		break
	}
	return svc
}

func parseServer(entry gjson.Result) model.Server {
	if entry.Type == gjson.String {
		return model.Server{URL: entry.Str}
	}
	return model.Server{URL: firstString(entry, serverURLFields)}
}

func parseServiceDirectory(doc gjson.Result) model.ServiceDirectory {
	var dir model.ServiceDirectory
	eachEntry(doc, func(key string, v gjson.Result) {
		entry := model.ServiceEntry{
			Key:     key,
			Service: parseService(v),
		}
		if v.IsObject() {
			for _, f := range serviceNameFields {
				if r := v.Get(f); r.Type == gjson.String && r.Str != "" {
					entry.Names = append(entry.Names, r.Str)
				}
			}
		}
		dir = append(dir, entry)
	})
	return dir
}
