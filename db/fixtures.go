package db

import (
	"sort"

	"course_catalog/models"
)

var seedCourses = []models.Course{
	{ID: 1, SeqNo: 0, URL: "angular-core-course", Category: "ADVANCED", LessonsCount: 10,
		Titles: models.Titles{Description: "Angular Core Deep Dive", LongDescription: "A detailed walk-through of the most important part of Angular - the Core and Common modules"}},
	{ID: 2, SeqNo: 1, URL: "rxjs-course", Category: "BEGINNER", LessonsCount: 10,
		Titles: models.Titles{Description: "RxJs In Practice Course", LongDescription: "Understand the RxJs Observable pattern, learn the RxJs Operators via practical examples"}},
	{ID: 3, SeqNo: 2, URL: "ngrx-course", Category: "BEGINNER", LessonsCount: 10,
		Titles: models.Titles{Description: "NgRx In Depth", LongDescription: "Learn the modern Ngrx Ecosystem, including NgRx Data, Store, Effects, Router Store, Ngrx Entity, and Dev Tools."}},
	{ID: 4, SeqNo: 3, URL: "angular-for-beginners", Category: "BEGINNER", LessonsCount: 10,
		Titles: models.Titles{Description: "Angular for Beginners", LongDescription: "Establish a solid layer of fundamentals, learn what's under the hood of Angular"}},
	{ID: 5, SeqNo: 4, URL: "angular-security-course", Category: "ADVANCED", LessonsCount: 11,
		Titles: models.Titles{Description: "Angular Security Course - Web Security Fundamentals", LongDescription: "Learn Web Security Fundamentals and apply them to defend an Angular / Node Application from multiple types of attacks."}},
	{ID: 6, SeqNo: 5, URL: "angular-pwa-course", Category: "ADVANCED", LessonsCount: 8,
		Titles: models.Titles{Description: "Angular PWA - Progressive Web Apps Course", LongDescription: "Learn Angular Progressive Web Applications, build the future of the Web Today."}},
	{ID: 7, SeqNo: 6, URL: "angular-advanced-library-laboratory-build-your-own-library", Category: "ADVANCED", LessonsCount: 12,
		Titles: models.Titles{Description: "Angular Advanced Library Laboratory: Build Your Own Library", LongDescription: "Learn Advanced Angular functionality typically used in Library Development. Advanced Components, Directives, Testing, Npm"}},
	{ID: 8, SeqNo: 7, URL: "angular-material-course", Category: "BEGINNER", LessonsCount: 12,
		Titles: models.Titles{Description: "Angular Material Course", LongDescription: "Build Applications with the official Angular Widget Library"}},
	{ID: 9, SeqNo: 8, URL: "firebase-course", Category: "BEGINNER", LessonsCount: 10,
		Titles: models.Titles{Description: "Firebase & AngularFire In Depth", LongDescription: "Learn Firebase from scratch and build a complete application in the process"}},
	{ID: 10, SeqNo: 9, URL: "angular-universal-course", Category: "ADVANCED", LessonsCount: 10,
		Titles: models.Titles{Description: "Angular Universal In Depth", LongDescription: "Master server-side rendering and pre-rendering for Angular applications"}},
	{ID: 11, SeqNo: 10, URL: "stripe-course", Category: "ADVANCED", LessonsCount: 10,
		Titles: models.Titles{Description: "Stripe Payments In Practice", LongDescription: "Build your own ecommerce store and membership website with Firebase, Stripe and Express"}},
	{ID: 12, SeqNo: 11, URL: "angular-testing-course", Category: "BEGINNER", LessonsCount: 12, Promo: true,
		Titles: models.Titles{Description: "Angular Testing Course", LongDescription: "In-depth guide to Unit Testing and E2E Testing of Angular Applications"}},
}

var seedLessons = []models.Lesson{
	{ID: 1, CourseID: 1, SeqNo: 1, Duration: "4:17", Description: "Angular Tutorial For Beginners - Build Your First App - Hello World Step By Step"},
	{ID: 2, CourseID: 1, SeqNo: 2, Duration: "2:07", Description: "Building Your First Component - Component Composition"},
	{ID: 3, CourseID: 1, SeqNo: 3, Duration: "2:33", Description: "Component @Input - How To Pass Input Data To an Component"},
	{ID: 4, CourseID: 1, SeqNo: 4, Duration: "4:44", Description: "Component Events - Using @Output to create custom events"},
	{ID: 5, CourseID: 1, SeqNo: 5, Duration: "3:41", Description: "Angular Component Templates - Inline Vs External"},
	{ID: 11, CourseID: 2, SeqNo: 1, Duration: "3:40", Description: "Introduction to RxJs Streams"},
	{ID: 12, CourseID: 2, SeqNo: 2, Duration: "5:21", Description: "What is an Observable?"},
	{ID: 13, CourseID: 2, SeqNo: 3, Duration: "4:03", Description: "Understanding the RxJs map Operator"},
	{ID: 21, CourseID: 3, SeqNo: 1, Duration: "2:30", Description: "NgRx In Depth - Course Kick-Off"},
	{ID: 22, CourseID: 3, SeqNo: 2, Duration: "6:12", Description: "Store, Actions and Reducers"},
	{ID: 48, CourseID: 12, SeqNo: 1, Duration: "4:17", Description: "Angular Testing Course - Helicopter View"},
	{ID: 49, CourseID: 12, SeqNo: 2, Duration: "7:25", Description: "Setting up the Angular Testing Environment"},
	{ID: 50, CourseID: 12, SeqNo: 3, Duration: "5:02", Description: "Writing Your First Jasmine Test"},
	{ID: 51, CourseID: 12, SeqNo: 4, Duration: "3:33", Description: "Jasmine Spies - Mocking Dependencies"},
	{ID: 52, CourseID: 12, SeqNo: 5, Duration: "6:14", Description: "Testing Services With the TestBed"},
	{ID: 53, CourseID: 12, SeqNo: 6, Duration: "8:01", Description: "Testing HTTP Services With HttpTestingController"},
	{ID: 54, CourseID: 12, SeqNo: 7, Duration: "4:56", Description: "Testing Error Handling In Services"},
	{ID: 55, CourseID: 12, SeqNo: 8, Duration: "5:48", Description: "Testing Presentational Components"},
	{ID: 56, CourseID: 12, SeqNo: 9, Duration: "6:37", Description: "Testing Container Components"},
	{ID: 57, CourseID: 12, SeqNo: 10, Duration: "7:10", Description: "Asynchronous Testing With fakeAsync"},
	{ID: 58, CourseID: 12, SeqNo: 11, Duration: "4:21", Description: "Asynchronous Testing With waitForAsync"},
	{ID: 59, CourseID: 12, SeqNo: 12, Duration: "9:42", Description: "End to End Testing With Cypress"},
}

// SeedCourses returns a fresh copy of the fixture catalog, ordered by id.
func SeedCourses() []models.Course {
	out := make([]models.Course, len(seedCourses))
	copy(out, seedCourses)
	return out
}

func SeedLessons() []models.Lesson {
	out := make([]models.Lesson, len(seedLessons))
	copy(out, seedLessons)
	return out
}

// FindLessonsForCourse lists every fixture lesson of a course in seqNo
// order.
func FindLessonsForCourse(courseID int) []models.Lesson {
	var out []models.Lesson
	for _, l := range seedLessons {
		if l.CourseID == courseID {
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SeqNo < out[j].SeqNo })
	return out
}
