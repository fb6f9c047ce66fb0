package web

import (
	"net/http"
)

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	s.render(w, "home.html", pageData{Title: "Fermento"})
}

func (s *Server) handleMenu(w http.ResponseWriter, r *http.Request) {
	s.render(w, "menu.html", pageData{
		Title:      "Menu",
		Categories: Menu,
		Active:     MenuFor(r.URL.Query().Get("category")),
	})
}

func (s *Server) handleGallery(w http.ResponseWriter, r *http.Request) {
	s.render(w, "gallery.html", pageData{Title: "Galleria"})
}

func (s *Server) handleBlog(w http.ResponseWriter, r *http.Request) {
	s.render(w, "blog.html", pageData{Title: "Blog"})
}

// handleStatus reports backend connectivity. POST forces a probe right away
// instead of waiting out the poll interval. The details view is only
// rendered in environments that allow it.
func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodPost {
		s.Monitor.CheckNow(r.Context())
		http.Redirect(w, r, "/status", http.StatusSeeOther)
		return
	}
	s.render(w, "status.html", pageData{
		Title:   "Stato",
		Status:  s.Monitor.Snapshot(),
		Details: !s.Cfg.Env.IsProduction,
	})
}
