package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/applink/pkg/domain/model"
)

func TestServiceDirectory_Find(t *testing.T) {
	byKey := model.Service{Servers: []model.Server{{URL: "http://10.21.0.2:80"}}}
	byName := model.Service{Servers: []model.Server{{URL: "http://10.21.0.3:80"}}}

	dir := model.ServiceDirectory{
		{Names: []string{"files@docker"}, Service: byName},
		{Key: "files@docker", Service: byKey},
		{Key: "other@docker", Names: []string{"photos@docker"}},
	}

	t.Run("key match wins over earlier name match", func(t *testing.T) {
		svc, ok := dir.Find("files@docker")
		gt.True(t, ok)
		gt.Equal(t, svc.Servers[0].URL, "http://10.21.0.2:80")
	})

	t.Run("secondary name match", func(t *testing.T) {
		_, ok := dir.Find("photos@docker")
		gt.True(t, ok)
	})

	t.Run("no match", func(t *testing.T) {
		_, ok := dir.Find("missing@docker")
		gt.False(t, ok)
	})

	t.Run("empty name never matches keyless entries", func(t *testing.T) {
		_, ok := dir.Find("")
		gt.False(t, ok)
	})
}
