package persistent

import (
	"database/sql"

	"sourced-feed/pkg/models"
	"sourced-feed/services/feed/internal/entity"
)

// scanCandidateRows normalizes the joined owner projection into the one
// canonical entity.Owner shape before anything downstream sees it. A post
// whose profile row is missing still comes back with empty owner fields.
func scanCandidateRows(rows *sql.Rows) []entity.Post {
	var posts []entity.Post
	for rows.Next() {
		var postID, ownerID, imageURL sql.NullString
		var caption, musicPreviewURL sql.NullString
		var likeCount, commentCount sql.NullInt32
		var createdAt sql.NullTime
		var profileID, username, avatarURL sql.NullString
		var isVerified sql.NullBool

		if err := rows.Scan(&postID, &ownerID, &imageURL, &caption, &musicPreviewURL, &likeCount, &commentCount, &createdAt, &profileID, &username, &avatarURL, &isVerified); err != nil {
			continue
		}

		post := entity.Post{
			ID:           postID.String,
			OwnerID:      ownerID.String,
			ImageURL:     imageURL.String,
			LikeCount:    int(likeCount.Int32),
			CommentCount: int(commentCount.Int32),
			CreatedAt:    createdAt.Time,
			Owner: entity.Owner{
				ID:         profileID.String,
				Username:   username.String,
				IsVerified: isVerified.Bool,
			},
		}

		if caption.Valid {
			c := caption.String
			post.Caption = &c
		}
		if musicPreviewURL.Valid {
			m := musicPreviewURL.String
			post.MusicPreviewURL = &m
		}
		if avatarURL.Valid {
			a := avatarURL.String
			post.Owner.AvatarURL = &a
		}

		posts = append(posts, post)
	}

	return posts
}

func ToPostViewEntity(m *models.PostView) entity.PostView {
	return entity.PostView{
		UserID:      m.UserID,
		PostID:      m.PostID,
		ViewedAt:    m.ViewedAt,
		TimeSpentMs: m.TimeSpentMs,
		Interacted:  m.Interacted,
	}
}

func ToPostItemEntity(m *models.FeedPostItem) entity.PostItem {
	return entity.PostItem{
		ID:         m.ID,
		Title:      m.Title,
		ImageURL:   m.ImageURL,
		ProductURL: m.ProductURL,
		Price:      m.Price,
		Seller:     m.Seller,
		LikeCount:  m.LikeCount,
	}
}
