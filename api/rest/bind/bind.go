package bind

import (
	"github.com/labstack/echo/v4"
	"github.com/stagehand-cloud/stagehand/api/rest/auth"
	"github.com/stagehand-cloud/stagehand/api/rest/controller/artist"
	"github.com/stagehand-cloud/stagehand/api/rest/controller/category"
	"github.com/stagehand-cloud/stagehand/api/rest/controller/drink"
	"github.com/stagehand-cloud/stagehand/api/rest/controller/node"
	"github.com/stagehand-cloud/stagehand/api/rest/controller/nodegroup"
	"github.com/stagehand-cloud/stagehand/api/rest/controller/question"
	"github.com/stagehand-cloud/stagehand/api/rest/controller/quiz"
	"github.com/stagehand-cloud/stagehand/api/rest/controller/show"
	"github.com/stagehand-cloud/stagehand/api/rest/controller/venue"
)

func All(g *echo.Group) {
	Booking(g)
	Trivia(g)
	Cafe(g)
	Inventory(g)
}

func Booking(g *echo.Group) {
	// venues
	{
		g.GET("/venues", venue.List)
		g.POST("/venues/search", venue.Search)
		g.GET("/venues/:id", venue.Get)
		g.POST("/venues/create", venue.Post)
		g.PUT("/venues/:id", venue.Put)
		g.DELETE("/venues/:id", venue.Delete)
	}

	// artists
	{
		g.GET("/artists", artist.List)
		g.POST("/artists/search", artist.Search)
		g.GET("/artists/:id", artist.Get)
		g.POST("/artists/create", artist.Post)
		g.PUT("/artists/:id", artist.Put)
		g.DELETE("/artists/:id", artist.Delete)
	}

	// shows
	{
		g.GET("/shows", show.List)
		g.POST("/shows/create", show.Post)
	}
}

func Trivia(g *echo.Group) {
	g.GET("/categories", category.List)
	g.GET("/categories/:id/questions", category.Questions)
	g.GET("/questions", question.List)
	g.POST("/questions", question.Post)
	g.DELETE("/questions/:id", question.Delete)
	g.POST("/quizzes", quiz.Post)
}

func Cafe(g *echo.Group) {
	g.GET("/drinks", drink.List)
	g.GET("/drinks-detail", drink.Detail, auth.Permission("get:drinks-detail"))
	g.POST("/drinks", drink.Post, auth.Permission("post:drinks"))
	g.PATCH("/drinks/:id", drink.Patch, auth.Permission("patch:drinks"))
	g.DELETE("/drinks/:id", drink.Delete, auth.Permission("delete:drinks"))
}

func Inventory(g *echo.Group) {
	// nodes
	{
		g.GET("/nodes", node.List, auth.Permission("get:nodes"))
		g.POST("/nodes", node.Post, auth.Permission("post:nodes"))
		g.PATCH("/nodes/:id", node.Patch, auth.Permission("patch:nodes"))
		g.DELETE("/nodes/:id", node.Delete, auth.Permission("delete:nodes"))
	}

	// nodegroups
	{
		g.GET("/nodegroups", nodegroup.List, auth.Permission("get:nodegroups"))
		g.POST("/nodegroups", nodegroup.Post, auth.Permission("post:nodegroups"))
		g.PATCH("/nodegroups/:id", nodegroup.Patch, auth.Permission("patch:nodegroups"))
		g.DELETE("/nodegroups/:id", nodegroup.Delete, auth.Permission("delete:nodegroups"))
	}
}
