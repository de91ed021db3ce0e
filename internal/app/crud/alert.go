package crud

import (
	"fmt"

	"github.com/gin-gonic/gin"
)

// Alerts writes the informational X-<app>-alert / X-<app>-params headers.
type Alerts struct {
	AppName string
}

func (a Alerts) alertHeader() string  { return "X-" + a.AppName + "-alert" }
func (a Alerts) errorHeader() string  { return "X-" + a.AppName + "-error" }
func (a Alerts) paramsHeader() string { return "X-" + a.AppName + "-params" }

// ExposedHeaders lists the alert headers browsers need CORS permission to read.
func (a Alerts) ExposedHeaders() []string {
	if a.AppName == "" {
		return nil
	}
	return []string{a.alertHeader(), a.errorHeader(), a.paramsHeader()}
}

func (a Alerts) Created(c *gin.Context, entity string, id uint64) {
	a.alert(c, fmt.Sprintf("A new %s is created with identifier %d", entity, id), id)
}

func (a Alerts) Updated(c *gin.Context, entity string, id uint64) {
	a.alert(c, fmt.Sprintf("A %s is updated with identifier %d", entity, id), id)
}

func (a Alerts) Deleted(c *gin.Context, entity string, id uint64) {
	a.alert(c, fmt.Sprintf("A %s is deleted with identifier %d", entity, id), id)
}

func (a Alerts) Failure(c *gin.Context, entity, key string) {
	if a.AppName == "" {
		return
	}
	c.Header(a.errorHeader(), "error."+key)
	c.Header(a.paramsHeader(), entity)
}

func (a Alerts) alert(c *gin.Context, message string, id uint64) {
	if a.AppName == "" {
		return
	}
	c.Header(a.alertHeader(), message)
	c.Header(a.paramsHeader(), fmt.Sprintf("%d", id))
}
