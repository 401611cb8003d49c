package practiceRepository

const (
	queryCreateSummary = `
		INSERT INTO practice_summaries (
			id,
			user_id,
			script_title,
			script_content,
			duration_ms,
			message_count,
			average_metrics,
			coaching_feedback,
			key_points,
			strengths,
			improvements,
			created_at
		) VALUES (
			:id,
			:user_id,
			:script_title,
			:script_content,
			:duration_ms,
			:message_count,
			:average_metrics,
			:coaching_feedback,
			:key_points,
			:strengths,
			:improvements,
			:created_at
		)
	`

	queryGetSummaryByID = `
		SELECT
			id,
			user_id,
			script_title,
			script_content,
			duration_ms,
			message_count,
			average_metrics,
			coaching_feedback,
			key_points,
			strengths,
			improvements,
			created_at
		FROM practice_summaries
		WHERE id = :id
	`

	queryGetSummariesByUserID = `
		SELECT
			id,
			user_id,
			script_title,
			script_content,
			duration_ms,
			message_count,
			average_metrics,
			coaching_feedback,
			key_points,
			strengths,
			improvements,
			created_at
		FROM practice_summaries
		WHERE user_id = :user_id
		ORDER BY created_at DESC
	`

	queryDeleteSummary = `
		DELETE FROM practice_summaries
		WHERE id = :id
	`
)
