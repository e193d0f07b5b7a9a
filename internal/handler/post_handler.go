package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"yatube/internal/form"
	"yatube/internal/middleware"
	"yatube/internal/pkg"
	"yatube/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PostHandler struct {
	svc       *service.PostService
	uploadDir string
}

func NewPostHandler(db *gorm.DB, pageSize int, uploadDir string) *PostHandler {
	return &PostHandler{
		svc:       service.NewPostService(db, pageSize),
		uploadDir: uploadDir,
	}
}

// Index renders the landing list. The route is wrapped by the page
// cache middleware.
func (h *PostHandler) Index(c *gin.Context) {
	page, err := h.svc.Index(c.Query("page"))
	if err != nil {
		serverError(c, err)
		return
	}
	c.HTML(http.StatusOK, "index.html", gin.H{
		"page_obj": page,
	})
}

func (h *PostHandler) GroupPosts(c *gin.Context) {
	group, page, err := h.svc.GroupPosts(c.Param("slug"), c.Query("page"))
	if err != nil {
		fail(c, err)
		return
	}
	c.HTML(http.StatusOK, "group_list.html", gin.H{
		"group":    group,
		"page_obj": page,
	})
}

func (h *PostHandler) Profile(c *gin.Context) {
	author, page, following, err := h.svc.Profile(
		c.Param("username"), c.Query("page"), middleware.UserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.HTML(http.StatusOK, "profile.html", gin.H{
		"author":      author,
		"page_obj":    page,
		"post_amount": page.Total,
		"following":   following,
	})
}

func (h *PostHandler) Detail(c *gin.Context) {
	postID, ok := parseID(c, "id")
	if !ok {
		return
	}
	post, comments, postAmount, err := h.svc.Detail(postID)
	if err != nil {
		fail(c, err)
		return
	}
	c.HTML(http.StatusOK, "post_detail.html", gin.H{
		"post":        post,
		"comments":    comments,
		"post_amount": postAmount,
		"form":        form.CommentForm{},
	})
}

// FollowIndex renders posts by every author the session user follows.
func (h *PostHandler) FollowIndex(c *gin.Context) {
	page, err := h.svc.Feed(middleware.UserID(c), c.Query("page"))
	if err != nil {
		serverError(c, err)
		return
	}
	c.HTML(http.StatusOK, "follow.html", gin.H{
		"page_obj": page,
	})
}

func (h *PostHandler) CreateForm(c *gin.Context) {
	h.renderPostForm(c, form.PostForm{}, nil, false)
}

func (h *PostHandler) Create(c *gin.Context) {
	userID := middleware.UserID(c)

	f, _, errs := bindPostForm(c)
	if errs != nil {
		h.renderPostForm(c, f, errs, false)
		return
	}
	imagePath, ok := h.saveImage(c, f, false)
	if !ok {
		return
	}

	res, err := h.svc.Create(userID, f, imagePath)
	if err != nil {
		serverError(c, err)
		return
	}
	if res.Outcome == service.Rejected {
		h.renderPostForm(c, f, res.Errors, false)
		return
	}

	author, err := h.svc.Author(userID)
	if err != nil {
		serverError(c, err)
		return
	}
	c.Redirect(http.StatusFound, fmt.Sprintf("/profile/%s/", author.Username))
}

func (h *PostHandler) EditForm(c *gin.Context) {
	postID, ok := parseID(c, "id")
	if !ok {
		return
	}
	post, _, _, err := h.svc.Detail(postID)
	if err != nil {
		fail(c, err)
		return
	}
	if post.AuthorID != middleware.UserID(c) {
		c.Redirect(http.StatusFound, fmt.Sprintf("/posts/%d/", postID))
		return
	}
	f := form.PostForm{Text: post.Text, Group: post.GroupID}
	h.renderPostForm(c, f, nil, true)
}

func (h *PostHandler) Edit(c *gin.Context) {
	postID, ok := parseID(c, "id")
	if !ok {
		return
	}
	detail := fmt.Sprintf("/posts/%d/", postID)

	// Authorship is settled before the submission is even looked at: a
	// non-author gets the silent redirect no matter what they sent, and
	// nothing of theirs touches disk.
	post, _, _, err := h.svc.Detail(postID)
	if err != nil {
		fail(c, err)
		return
	}
	if post.AuthorID != middleware.UserID(c) {
		c.Redirect(http.StatusFound, detail)
		return
	}

	f, groupSubmitted, errs := bindPostForm(c)
	if errs != nil {
		h.renderPostForm(c, f, errs, true)
		return
	}
	imagePath, ok := h.saveImage(c, f, true)
	if !ok {
		return
	}

	res, err := h.svc.Edit(middleware.UserID(c), postID, f, imagePath, groupSubmitted)
	if err != nil {
		fail(c, err)
		return
	}
	switch res.Outcome {
	case service.Denied:
		c.Redirect(http.StatusFound, detail)
	case service.Rejected:
		h.renderPostForm(c, f, res.Errors, true)
	default:
		c.Redirect(http.StatusFound, detail)
	}
}

// AddComment creates a comment and redirects to the post either way.
// Invalid input is dropped without an error page.
func (h *PostHandler) AddComment(c *gin.Context) {
	postID, ok := parseID(c, "id")
	if !ok {
		return
	}
	detail := fmt.Sprintf("/posts/%d/", postID)

	var f form.CommentForm
	if err := c.ShouldBind(&f); err != nil {
		c.Redirect(http.StatusFound, detail)
		return
	}
	if err := h.svc.AddComment(middleware.UserID(c), postID, f); err != nil {
		fail(c, err)
		return
	}
	c.Redirect(http.StatusFound, detail)
}

// bindPostForm binds the post-edit shape. The group select is parsed
// by hand so an empty option stays nil instead of becoming group 0,
// and so the caller knows whether the field was submitted at all.
func bindPostForm(c *gin.Context) (form.PostForm, bool, map[string]string) {
	var f form.PostForm
	if err := c.ShouldBind(&f); err != nil {
		return f, false, form.FieldErrors(err)
	}
	raw, submitted := c.GetPostForm("group")
	if submitted && raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return f, submitted, map[string]string{"group": "Некорректное значение."}
		}
		f.Group = &id
	}
	return f, submitted, nil
}

// saveImage stores the optional multipart image and reports the URL
// path, rendering the form back on failure.
func (h *PostHandler) saveImage(c *gin.Context, f form.PostForm, isEdit bool) (string, bool) {
	header, err := c.FormFile("image")
	if err != nil {
		// No file submitted.
		return "", true
	}
	path, err := pkg.SaveImage(h.uploadDir, header)
	if err != nil {
		h.renderPostForm(c, f, map[string]string{"image": err.Error()}, isEdit)
		return "", false
	}
	return path, true
}

func (h *PostHandler) renderPostForm(c *gin.Context, f form.PostForm, errs map[string]string, isEdit bool) {
	groups, err := h.svc.Groups()
	if err != nil {
		serverError(c, err)
		return
	}
	c.HTML(http.StatusOK, "create_post.html", gin.H{
		"form":       f,
		"errors":     errs,
		"groups":     groups,
		"is_edit":    isEdit,
		"labels":     form.Labels,
		"help_texts": form.HelpTexts,
	})
}
