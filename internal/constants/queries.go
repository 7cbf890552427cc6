package constants

// Queries are written with '?' placeholders and passed through sqlx Rebind.
const (
	// ListPostingEnrollments joins a posting's enrollments in one status with
	// the volunteer identity.
	ListPostingEnrollments = `
	SELECT e.id AS enrollment_id,
	       e.posting_id,
	       e.message,
	       e.status,
	       e.created_at,
	       v.id AS volunteer_id,
	       v.name,
	       v.email,
	       v.date_of_birth,
	       v.gender,
	       v.description,
	       v.privacy
	FROM enrollments e
	JOIN volunteers v ON v.id = e.volunteer_id
	WHERE e.posting_id = ? AND e.status = ?
	ORDER BY e.created_at ASC, e.id ASC
	`

	// ListVolunteerSkills loads skill names for a set of volunteers; expanded with sqlx.In.
	ListVolunteerSkills = `
	SELECT volunteer_id, name
	FROM volunteer_skills
	WHERE volunteer_id IN (?)
	ORDER BY name ASC
	`

	// ListVolunteerEnrollments returns a volunteer's enrollments with posting titles.
	ListVolunteerEnrollments = `
	SELECT e.id AS enrollment_id,
	       e.posting_id,
	       p.title,
	       p.start_time,
	       p.is_open,
	       e.status,
	       e.message,
	       e.created_at
	FROM enrollments e
	JOIN postings p ON p.id = e.posting_id
	WHERE e.volunteer_id = ?
	ORDER BY p.start_time ASC, e.id ASC
	`
)
