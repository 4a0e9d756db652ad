// Copyright 2023 uhppoted@twyst.co.za. All rights reserved.
// Use of this source code is governed by an MIT-style license
// that can be found in the LICENSE file.

/*
Package uhppoted-app-classroom maintains a set of Google Classroom courses from a course list stored as a Google Sheets
worksheet.

uhppoted-app-classroom can be used from the command line but is really intended to be run from a cron job to keep the
courses, course leads and student rosters in Google Classroom in step with a unified course list. Each run creates the
courses that do not exist, updates the courses that have changed, writes the course IDs back to the worksheet and records
what was done in a log worksheet.

uhppoted-app-classroom supports the following commands:

  - sync, to create or update the Google Classroom courses listed in a Google Sheets worksheet
  - get, to download the course list from a Google Sheets worksheet as a TSV file
  - put, to store a TSV course list to a Google Sheets worksheet
  - version, to display the current version
*/
package classroom
