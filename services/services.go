package services

import "gorm.io/gorm"

// Services bundles all business services over a shared database connection.
type Services struct {
	User    *UserService
	Group   *GroupService
	Post    *PostService
	Comment *CommentService
	Follow  *FollowService
	Contact *ContactService
}

// New builds the full service set on top of db.
func New(db *gorm.DB) *Services {
	return &Services{
		User:    NewUserService(db),
		Group:   NewGroupService(db),
		Post:    NewPostService(db),
		Comment: NewCommentService(db),
		Follow:  NewFollowService(db),
		Contact: NewContactService(db),
	}
}
